// Package main wires together the SEO edge service binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vnhistore/seo-edge/internal/api"
	"github.com/vnhistore/seo-edge/internal/botdetect"
	"github.com/vnhistore/seo-edge/internal/config"
	"github.com/vnhistore/seo-edge/internal/gateway"
	"github.com/vnhistore/seo-edge/internal/logging"
	"github.com/vnhistore/seo-edge/internal/seo"
	"github.com/vnhistore/seo-edge/internal/sitemap"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := gateway.New(gateway.Config{
		Origin:       cfg.Gateway.Origin,
		Timeout:      cfg.GatewayTimeout(),
		BypassHeader: cfg.Gateway.BypassHeader,
		BypassValue:  cfg.Gateway.BypassValue,
	})
	synth := seo.NewSynthesizer(client, seo.Config{
		SiteOrigin:         cfg.Site.Origin,
		SiteName:           cfg.Site.Name,
		Locale:             cfg.Site.Locale,
		TwitterHandle:      cfg.Site.TwitterHandle,
		DefaultDescription: cfg.Site.DefaultDescription,
		DefaultImagePath:   cfg.Site.DefaultImagePath,
	}, logger.Named("seo"))
	builder := sitemap.New(client, sitemap.Config{
		SiteOrigin: cfg.Site.Origin,
		PageSize:   cfg.Gateway.PageSize,
	}, logger.Named("sitemap"))
	detector := botdetect.New()

	apiServer := api.NewServer(synth, builder, detector, cfg, logger.Named("api"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
