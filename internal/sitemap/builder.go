// Package sitemap renders the storefront's XML sitemap from gateway data.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vnhistore/seo-edge/internal/gateway"
	"github.com/vnhistore/seo-edge/internal/telemetry"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	imageNamespace   = "http://www.google.com/schemas/sitemap-image/1.1"
)

// Catalog lists the gateway reads the builder depends on.
type Catalog interface {
	Products(ctx context.Context, page, size int) ([]gateway.Product, error)
	Categories(ctx context.Context) ([]gateway.Category, error)
}

// Config controls builder behavior.
type Config struct {
	// SiteOrigin prefixes every location in the sitemap.
	SiteOrigin string
	// PageSize bounds the product listing fetch.
	PageSize int
}

// Builder fetches catalog data and renders the sitemap document.
type Builder struct {
	catalog Catalog
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
}

// New builds a Builder.
func New(catalog Catalog, cfg Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 1000
	}
	return &Builder{catalog: catalog, cfg: cfg, logger: logger, now: time.Now}
}

type urlSet struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsImage string   `xml:"xmlns:image,attr"`
	URLs       []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name    `xml:"url"`
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Image      *imageEntry `xml:"image:image,omitempty"`
}

type imageEntry struct {
	Loc   string `xml:"image:loc"`
	Title string `xml:"image:title,omitempty"`
}

// staticRoute is one hand-maintained storefront page.
type staticRoute struct {
	path       string
	changeFreq string
	priority   string
}

var staticRoutes = []staticRoute{
	{path: "/", changeFreq: "daily", priority: "1.0"},
	{path: "/san-pham", changeFreq: "daily", priority: "0.9"},
	{path: "/gioi-thieu", changeFreq: "monthly", priority: "0.5"},
	{path: "/lien-he", changeFreq: "monthly", priority: "0.5"},
}

// Build fetches products and categories concurrently and renders the sitemap.
// Either fetch failing yields an empty section for that resource; only XML
// serialization can fail the build.
func (b *Builder) Build(ctx context.Context) ([]byte, error) {
	var (
		wg         sync.WaitGroup
		products   []gateway.Product
		categories []gateway.Category
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		if products, err = b.catalog.Products(ctx, 0, b.cfg.PageSize); err != nil {
			b.logger.Warn("sitemap product fetch failed", zap.Error(err))
			products = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if categories, err = b.catalog.Categories(ctx); err != nil {
			b.logger.Warn("sitemap category fetch failed", zap.Error(err))
			categories = nil
		}
	}()
	wg.Wait()

	set := urlSet{
		Xmlns:      sitemapNamespace,
		XmlnsImage: imageNamespace,
		URLs:       b.entries(products, categories),
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}

	telemetry.SetSitemapEntries(len(set.URLs))
	return append([]byte(xml.Header), out...), nil
}

// entries orders the document: static pages first, then products, then
// categories.
func (b *Builder) entries(products []gateway.Product, categories []gateway.Category) []urlEntry {
	entries := make([]urlEntry, 0, len(staticRoutes)+len(products)+len(categories))
	nowStamp := b.now().UTC().Format(time.RFC3339)

	for _, route := range staticRoutes {
		entries = append(entries, urlEntry{
			Loc:        b.location(route.path),
			LastMod:    nowStamp,
			ChangeFreq: route.changeFreq,
			Priority:   route.priority,
		})
	}

	for _, p := range products {
		entry := urlEntry{
			Loc:        b.location("/san-pham/" + strconv.FormatInt(p.ID, 10)),
			LastMod:    nowStamp,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		}
		if !p.UpdatedAt.IsZero() {
			entry.LastMod = p.UpdatedAt.UTC().Format(time.RFC3339)
		}
		if img := p.FirstImageURL(); img != "" {
			entry.Image = &imageEntry{
				Loc:   b.location(img),
				Title: p.Name,
			}
		}
		entries = append(entries, entry)
	}

	for _, c := range categories {
		slug := c.Slug
		if slug == "" {
			slug = strconv.FormatInt(c.ID, 10)
		}
		entry := urlEntry{
			Loc:        b.location("/danh-muc/" + slug),
			LastMod:    nowStamp,
			ChangeFreq: "weekly",
			Priority:   "0.6",
		}
		if !c.UpdatedAt.IsZero() {
			entry.LastMod = c.UpdatedAt.UTC().Format(time.RFC3339)
		}
		entries = append(entries, entry)
	}

	return entries
}

func (b *Builder) location(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(b.cfg.SiteOrigin, "/") + "/" + strings.TrimLeft(path, "/")
}
