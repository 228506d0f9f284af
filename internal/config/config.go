// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Site    SiteConfig    `mapstructure:"site"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// GatewayConfig points at the remote product API.
type GatewayConfig struct {
	Origin         string `mapstructure:"origin"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	BypassHeader   string `mapstructure:"bypass_header"`
	BypassValue    string `mapstructure:"bypass_value"`
	PageSize       int    `mapstructure:"page_size"`
}

// SiteConfig describes the public storefront identity used in rendered
// metadata and sitemap entries.
type SiteConfig struct {
	Origin             string `mapstructure:"origin"`
	Name               string `mapstructure:"name"`
	Locale             string `mapstructure:"locale"`
	TwitterHandle      string `mapstructure:"twitter_handle"`
	DefaultDescription string `mapstructure:"default_description"`
	DefaultImagePath   string `mapstructure:"default_image_path"`
}

// CacheConfig sets Cache-Control TTLs for the rendered documents.
type CacheConfig struct {
	MetaMaxAgeSeconds    int `mapstructure:"meta_max_age_seconds"`
	SitemapMaxAgeSeconds int `mapstructure:"sitemap_max_age_seconds"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEOEDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 30)
	// Empty defaults register the keys so AutomaticEnv can populate them.
	v.SetDefault("gateway.origin", "")
	v.SetDefault("gateway.bypass_header", "")
	v.SetDefault("gateway.bypass_value", "")
	v.SetDefault("site.origin", "")
	v.SetDefault("site.twitter_handle", "")
	v.SetDefault("gateway.timeout_seconds", 4)
	v.SetDefault("gateway.page_size", 1000)
	v.SetDefault("site.name", "VNHI Store")
	v.SetDefault("site.locale", "vi_VN")
	v.SetDefault("site.default_description", "VNHI Store - Mua sắm giày dép và phụ kiện chính hãng")
	v.SetDefault("site.default_image_path", "/logo512.png")
	v.SetDefault("cache.meta_max_age_seconds", 600)
	v.SetDefault("cache.sitemap_max_age_seconds", 21600)
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Gateway.Origin == "" {
		return fmt.Errorf("gateway.origin must be set")
	}
	if c.Gateway.TimeoutSeconds <= 0 {
		return fmt.Errorf("gateway.timeout_seconds must be > 0")
	}
	if c.Gateway.PageSize <= 0 || c.Gateway.PageSize > 1000 {
		return fmt.Errorf("gateway.page_size must be between 1 and 1000")
	}
	if c.Site.Origin == "" {
		return fmt.Errorf("site.origin must be set")
	}
	if c.Cache.MetaMaxAgeSeconds < 0 || c.Cache.SitemapMaxAgeSeconds < 0 {
		return fmt.Errorf("cache TTLs must not be negative")
	}
	return nil
}

// GatewayTimeout converts the configured gateway timeout into a duration.
func (c Config) GatewayTimeout() time.Duration {
	return time.Duration(c.Gateway.TimeoutSeconds) * time.Second
}

// ServerTimeout converts the configured request timeout into a duration.
func (c Config) ServerTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}
