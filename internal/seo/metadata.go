// Package seo synthesizes crawler-facing metadata documents for products.
package seo

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vnhistore/seo-edge/internal/gateway"
)

// productRoutePrefix is the storefront's product page path.
const productRoutePrefix = "/san-pham/"

// maxDescriptionRunes bounds the rendered meta description, ellipsis included.
const maxDescriptionRunes = 155

// Source reports where a synthesized record's data came from.
type Source string

// Data source labels, also used as telemetry label values.
const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Metadata is one product's crawler-facing record. Built fresh per request
// and immutable once constructed.
type Metadata struct {
	Title         string
	Description   string
	CanonicalURL  string
	ImageURL      string
	SiteName      string
	Locale        string
	TwitterHandle string
	// PriceAmount and BrandName are empty when the source record has no
	// price or brand; the renderer omits their tags entirely in that case.
	PriceAmount string
	PriceText   string
	BrandName   string
}

// ProductSource fetches one product by id.
type ProductSource interface {
	Product(ctx context.Context, id string) (gateway.Product, error)
}

// Config carries the site identity and fallback strings for synthesis.
type Config struct {
	SiteOrigin         string
	SiteName           string
	Locale             string
	TwitterHandle      string
	DefaultDescription string
	DefaultImagePath   string
}

// Synthesizer turns product ids into metadata records.
type Synthesizer struct {
	products ProductSource
	cfg      Config
	logger   *zap.Logger
}

// NewSynthesizer builds a Synthesizer.
func NewSynthesizer(products ProductSource, cfg Config, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{products: products, cfg: cfg, logger: logger}
}

// Synthesize builds metadata for the product, degrading to the configured
// defaults on any gateway failure. The canonical URL targets the requested
// product even on the fallback path.
func (s *Synthesizer) Synthesize(ctx context.Context, id string) (Metadata, Source) {
	meta, err := s.SynthesizeStrict(ctx, id)
	if err != nil {
		s.logger.Warn("product fetch failed, serving fallback metadata",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return s.Fallback(id), SourceFallback
	}
	return meta, SourceLive
}

// SynthesizeStrict builds metadata for the product and propagates gateway
// failures, including gateway.ErrNotFound, instead of degrading.
func (s *Synthesizer) SynthesizeStrict(ctx context.Context, id string) (Metadata, error) {
	product, err := s.products.Product(ctx, id)
	if err != nil {
		return Metadata{}, err
	}
	return s.fromProduct(id, product), nil
}

// Fallback returns the statically configured metadata record, scoped to the
// requested product id.
func (s *Synthesizer) Fallback(id string) Metadata {
	return Metadata{
		Title:         s.cfg.SiteName,
		Description:   s.cfg.DefaultDescription,
		CanonicalURL:  s.canonicalURL(id),
		ImageURL:      absoluteURL(s.cfg.SiteOrigin, s.cfg.DefaultImagePath),
		SiteName:      s.cfg.SiteName,
		Locale:        s.cfg.Locale,
		TwitterHandle: s.cfg.TwitterHandle,
	}
}

func (s *Synthesizer) fromProduct(id string, p gateway.Product) Metadata {
	title := s.cfg.SiteName
	if p.Name != "" {
		title = p.Name + " | " + s.cfg.SiteName
	}

	description := truncate(ExtractText(p.Description), maxDescriptionRunes)
	if description == "" {
		description = s.cfg.DefaultDescription
	}

	imageURL := p.FirstImageURL()
	if imageURL == "" {
		imageURL = s.cfg.DefaultImagePath
	}

	meta := Metadata{
		Title:         title,
		Description:   description,
		CanonicalURL:  s.canonicalURL(id),
		ImageURL:      absoluteURL(s.cfg.SiteOrigin, imageURL),
		SiteName:      s.cfg.SiteName,
		Locale:        s.cfg.Locale,
		TwitterHandle: s.cfg.TwitterHandle,
	}
	if p.Price > 0 {
		meta.PriceAmount = strconv.FormatFloat(p.Price, 'f', -1, 64)
		meta.PriceText = FormatVND(p.Price)
	}
	if p.Brand != nil {
		meta.BrandName = p.Brand.Name
	}
	return meta
}

func (s *Synthesizer) canonicalURL(id string) string {
	return absoluteURL(s.cfg.SiteOrigin, productRoutePrefix+id)
}

// absoluteURL resolves path against origin with exactly one separator.
// Already-absolute URLs pass through untouched.
func absoluteURL(origin, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(path, "/")
}

// truncate shortens text to at most limit runes. The ellipsis marking a cut
// counts against the limit so the invariant holds for consumers.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
