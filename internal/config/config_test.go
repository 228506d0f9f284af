package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`
server:
  port: 9090
gateway:
  origin: https://api.vnhi.store
  bypass_header: X-Tunnel-Skip
  bypass_value: "1"
site:
  origin: https://vnhi.store
cache:
  meta_max_age_seconds: 300
`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "https://api.vnhi.store", cfg.Gateway.Origin)
	require.Equal(t, "X-Tunnel-Skip", cfg.Gateway.BypassHeader)
	require.Equal(t, "https://vnhi.store", cfg.Site.Origin)
	require.Equal(t, 300, cfg.Cache.MetaMaxAgeSeconds)
	// Defaults survive partial files.
	require.Equal(t, "VNHI Store", cfg.Site.Name)
	require.Equal(t, "vi_VN", cfg.Site.Locale)
	require.Equal(t, 4, cfg.Gateway.TimeoutSeconds)
	require.Equal(t, 1000, cfg.Gateway.PageSize)
	require.Equal(t, 21600, cfg.Cache.SitemapMaxAgeSeconds)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SEOEDGE_GATEWAY_ORIGIN", "https://api.vnhi.store")
	t.Setenv("SEOEDGE_SITE_ORIGIN", "https://vnhi.store")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://api.vnhi.store", cfg.Gateway.Origin)
	require.Equal(t, "https://vnhi.store", cfg.Site.Origin)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestValidate_RejectsMissingOrigins(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Server:  ServerConfig{Port: 8080, TimeoutSeconds: 30},
		Gateway: GatewayConfig{TimeoutSeconds: 4, PageSize: 1000},
		Site:    SiteConfig{Origin: "https://vnhi.store"},
	}
	require.ErrorContains(t, cfg.Validate(), "gateway.origin")

	cfg.Gateway.Origin = "https://api.vnhi.store"
	cfg.Site.Origin = ""
	require.ErrorContains(t, cfg.Validate(), "site.origin")
}

func TestValidate_RejectsBadPageSize(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Server:  ServerConfig{Port: 8080, TimeoutSeconds: 30},
		Gateway: GatewayConfig{Origin: "https://api.vnhi.store", TimeoutSeconds: 4, PageSize: 5000},
		Site:    SiteConfig{Origin: "https://vnhi.store"},
	}
	require.ErrorContains(t, cfg.Validate(), "gateway.page_size")
}
