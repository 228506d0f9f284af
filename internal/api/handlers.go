package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vnhistore/seo-edge/internal/gateway"
	"github.com/vnhistore/seo-edge/internal/seo"
	"github.com/vnhistore/seo-edge/internal/telemetry"
)

// productPage serves the product route. Known crawlers get the synthesized
// metadata document; everyone else gets the application shell unchanged.
func (s *Server) productPage(w http.ResponseWriter, r *http.Request) {
	if !s.detector.IsCrawler(r.UserAgent()) {
		s.appShell(w, r)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		s.appShell(w, r)
		return
	}

	meta, source := s.synth.Synthesize(r.Context(), id)
	telemetry.ObserveRender("product-page", string(source))
	s.writeDocument(w, meta, s.cfg.Cache.MetaMaxAgeSeconds)
}

// productMeta serves the strict metadata endpoint: 400 without an id, 404
// when the gateway has no such product, 500 on anything unexpected.
func (s *Server) productMeta(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing product id", http.StatusBadRequest)
		return
	}

	meta, err := s.synth.SynthesizeStrict(r.Context(), id)
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("metadata synthesis failed",
			zap.String("product_id", id),
			zap.Error(err),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	telemetry.ObserveRender("product-meta", string(seo.SourceLive))
	s.writeDocument(w, meta, s.cfg.Cache.MetaMaxAgeSeconds)
}

// productOG serves the degrading metadata endpoint: a crawler always gets a
// well-formed 200 document, falling back to site defaults when the gateway
// is unreachable.
func (s *Server) productOG(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing product id", http.StatusBadRequest)
		return
	}

	meta, source := s.synth.Synthesize(r.Context(), id)
	telemetry.ObserveRender("product-og", string(source))
	s.writeDocument(w, meta, s.cfg.Cache.MetaMaxAgeSeconds)
}

// sitemapXML serves the sitemap. Build failures surface as a JSON error
// body, unlike the HTML paths.
func (s *Server) sitemapXML(w http.ResponseWriter, r *http.Request) {
	doc, err := s.sitemap.Build(r.Context())
	if err != nil {
		s.logger.Error("sitemap build failed", zap.Error(err))
		writeJSON(s.logger, w, http.StatusInternalServerError, map[string]string{
			"error": "failed to build sitemap",
		})
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.cfg.Cache.SitemapMaxAgeSeconds))
	if _, err := w.Write(doc); err != nil {
		s.logger.Error("sitemap write failed", zap.Error(err))
	}
}

func (s *Server) writeDocument(w http.ResponseWriter, meta seo.Metadata, maxAge int) {
	doc, err := seo.Render(meta)
	if err != nil {
		s.logger.Error("document render failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	if _, err := w.Write(doc); err != nil {
		s.logger.Error("document write failed", zap.Error(err))
	}
}

// appShell is the stand-in for the client application. The real storefront
// bundle is deployed separately; non-crawler traffic lands here untouched.
func (s *Server) appShell(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	shell := fmt.Sprintf(`<!DOCTYPE html>
<html lang="vi">
<head><meta charset="utf-8"/><title>%s</title></head>
<body><div id="root"></div><script src="/static/js/main.js"></script></body>
</html>
`, s.cfg.Site.Name)
	if _, err := w.Write([]byte(shell)); err != nil {
		s.logger.Error("app shell write failed", zap.Error(err))
	}
}
