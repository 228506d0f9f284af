// Package main hosts the SEO edge service entrypoint.
//
// Architecture overview:
//   - HTTP API: internal/api.Server exposes the crawler gate on the product
//     route, the standalone metadata endpoints, the sitemap endpoint, and
//     health/metrics endpoints. Requests carry an X-Request-ID and are logged
//     and measured by middleware.
//   - Crawler gate: internal/botdetect matches inbound user-agents against a
//     fixed signature set. Matching requests on /san-pham/{id} are answered
//     with a rendered Open Graph document; everything else falls through to
//     the application shell.
//   - Synthesis: internal/seo fetches a product from the gateway, strips
//     markup from its description with a real HTML parser, resolves image
//     URLs against the site origin, and renders a fixed html/template
//     document. Gateway failures degrade to configured defaults; the
//     canonical URL stays scoped to the requested product either way.
//   - Sitemap: internal/sitemap fetches products and categories concurrently,
//     tolerates either fetch failing, and serializes via encoding/xml so all
//     textual fields are escaped.
//   - Configuration & plumbing: Viper populates config from env/files; zap
//     provides structured logging; Prometheus collectors are exported via the
//     telemetry middleware and /metrics handler. The service holds no state
//     across requests and no upstream call is ever retried.
//
// Quick checklist:
//   - Configure env vars: SEOEDGE_SERVER_PORT, SEOEDGE_GATEWAY_ORIGIN,
//     SEOEDGE_GATEWAY_TIMEOUT_SECONDS, SEOEDGE_SITE_ORIGIN, SEOEDGE_SITE_NAME,
//     and the cache TTLs (SEOEDGE_CACHE_*) when the defaults do not fit.
//   - Run locally: go run ./cmd/seoedge -config config.yaml (or rely solely
//     on env overrides).
//   - The process reacts to SIGTERM with a bounded graceful drain.
package main
