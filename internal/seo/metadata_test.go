package seo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vnhistore/seo-edge/internal/gateway"
)

type fakeProducts struct {
	product gateway.Product
	err     error
}

func (f *fakeProducts) Product(_ context.Context, _ string) (gateway.Product, error) {
	if f.err != nil {
		return gateway.Product{}, f.err
	}
	return f.product, nil
}

func testConfig() Config {
	return Config{
		SiteOrigin:         "https://vnhi.store",
		SiteName:           "VNHI Store",
		Locale:             "vi_VN",
		DefaultDescription: "VNHI Store - Mua sắm giày dép chính hãng",
		DefaultImagePath:   "/logo512.png",
	}
}

func TestSynthesize_LiveProduct(t *testing.T) {
	t.Parallel()

	src := &fakeProducts{product: gateway.Product{
		ID:          42,
		Name:        "Giày <Pro>",
		Description: "<b>Tốt</b>" + strings.Repeat("x", 200),
		Images:      []gateway.Image{{URL: "/img/42.jpg"}},
		Price:       500000,
	}}
	s := NewSynthesizer(src, testConfig(), zap.NewNop())

	meta, source := s.Synthesize(context.Background(), "42")

	require.Equal(t, SourceLive, source)
	require.Equal(t, "Giày <Pro> | VNHI Store", meta.Title)
	require.Equal(t, "https://vnhi.store/img/42.jpg", meta.ImageURL)
	require.Equal(t, "https://vnhi.store/san-pham/42", meta.CanonicalURL)
	require.Equal(t, "500000", meta.PriceAmount)

	require.LessOrEqual(t, utf8.RuneCountInString(meta.Description), 155)
	require.True(t, strings.HasPrefix(meta.Description, "Tốtxxx"))
	require.True(t, strings.HasSuffix(meta.Description, "..."))
	require.NotContains(t, meta.Description, "<")
	require.NotContains(t, meta.Description, ">")
}

func TestSynthesize_GatewayFailureDegradesToDefaults(t *testing.T) {
	t.Parallel()

	src := &fakeProducts{err: errors.New("connection refused")}
	s := NewSynthesizer(src, testConfig(), zap.NewNop())

	meta, source := s.Synthesize(context.Background(), "42")

	require.Equal(t, SourceFallback, source)
	require.Equal(t, "VNHI Store", meta.Title)
	require.Equal(t, "VNHI Store - Mua sắm giày dép chính hãng", meta.Description)
	require.Equal(t, "https://vnhi.store/logo512.png", meta.ImageURL)
	// The canonical URL stays scoped to the requested product, never the homepage.
	require.Equal(t, "https://vnhi.store/san-pham/42", meta.CanonicalURL)
}

func TestSynthesizeStrict_PropagatesNotFound(t *testing.T) {
	t.Parallel()

	src := &fakeProducts{err: gateway.ErrNotFound}
	s := NewSynthesizer(src, testConfig(), zap.NewNop())

	_, err := s.SynthesizeStrict(context.Background(), "42")
	require.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestSynthesize_AbsoluteImagePassesThrough(t *testing.T) {
	t.Parallel()

	src := &fakeProducts{product: gateway.Product{
		ID:     7,
		Name:   "Dép Lào",
		Images: []gateway.Image{{URL: "https://cdn.vnhi.store/img/7.jpg"}},
	}}
	s := NewSynthesizer(src, testConfig(), zap.NewNop())

	meta, _ := s.Synthesize(context.Background(), "7")
	require.Equal(t, "https://cdn.vnhi.store/img/7.jpg", meta.ImageURL)
}

func TestSynthesize_SingleSeparatorBetweenOriginAndPath(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.SiteOrigin = "https://vnhi.store/"
	src := &fakeProducts{product: gateway.Product{
		ID:     7,
		Name:   "Dép Lào",
		Images: []gateway.Image{{URL: "/img/7.jpg"}},
	}}
	s := NewSynthesizer(src, cfg, zap.NewNop())

	meta, _ := s.Synthesize(context.Background(), "7")
	require.Equal(t, "https://vnhi.store/img/7.jpg", meta.ImageURL)
	require.NotContains(t, strings.TrimPrefix(meta.ImageURL, "https://"), "//")
}

func TestSynthesize_MissingFieldsFallBack(t *testing.T) {
	t.Parallel()

	src := &fakeProducts{product: gateway.Product{ID: 9}}
	s := NewSynthesizer(src, testConfig(), zap.NewNop())

	meta, source := s.Synthesize(context.Background(), "9")

	require.Equal(t, SourceLive, source)
	require.Equal(t, "VNHI Store", meta.Title)
	require.Equal(t, "VNHI Store - Mua sắm giày dép chính hãng", meta.Description)
	require.Equal(t, "https://vnhi.store/logo512.png", meta.ImageURL)
	require.Empty(t, meta.PriceAmount)
	require.Empty(t, meta.BrandName)
}

func TestSynthesize_ShortDescriptionHasNoEllipsis(t *testing.T) {
	t.Parallel()

	src := &fakeProducts{product: gateway.Product{
		ID:          3,
		Name:        "Giày Thể Thao",
		Description: "<p>Nhẹ và bền.</p>",
		Brand:       &gateway.Brand{Name: "VNHI"},
	}}
	s := NewSynthesizer(src, testConfig(), zap.NewNop())

	meta, _ := s.Synthesize(context.Background(), "3")
	require.Equal(t, "Nhẹ và bền.", meta.Description)
	require.Equal(t, "VNHI", meta.BrandName)
}

func TestTruncate_BoundsIncludeEllipsis(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("à", 400)
	got := truncate(long, 155)
	require.Equal(t, 155, utf8.RuneCountInString(got))
	require.True(t, strings.HasSuffix(got, "..."))

	require.Equal(t, "ngắn", truncate("ngắn", 155))
}
