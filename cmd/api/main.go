package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"residence-facilities/internal/catalog"
	"residence-facilities/internal/config"
	"residence-facilities/internal/httpserver"
	"residence-facilities/internal/logging"
	categoryrepo "residence-facilities/internal/repository/category"
	facilityrepo "residence-facilities/internal/repository/facility"
	categorysvc "residence-facilities/internal/service/category"
	facilitysvc "residence-facilities/internal/service/facility"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("api")

	for _, issue := range catalog.Check(catalog.Categories(), catalog.Facilities()) {
		logger.Warn("catalog issue",
			zap.String("severity", string(issue.Severity)),
			zap.String("subject", issue.Subject),
			zap.String("message", issue.Message))
	}

	categoryRepo := categoryrepo.NewStatic(logger)
	facilityRepo := facilityrepo.NewStatic(logger)
	categoryService := categorysvc.New(categoryRepo)
	facilityService := facilitysvc.New(categoryRepo, facilityRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CategorySvc: categoryService,
		FacilitySvc: facilityService,
	}, httpserver.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Registry:           reg,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
