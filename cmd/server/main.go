package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cme-volume-scraper/internal/config"
	"cme-volume-scraper/internal/extract"
	"cme-volume-scraper/internal/handler"
	"cme-volume-scraper/internal/logger"
	"cme-volume-scraper/internal/presenter"
	"cme-volume-scraper/internal/provider"
	"cme-volume-scraper/internal/service"
	"cme-volume-scraper/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	_ "cme-volume-scraper/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	newLoggerFunc          = logger.New
	initTracerFunc         = tracing.InitTracer
	newRouterFunc          = gin.New
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
	shutdownTracerFunc     = func(tp *sdktrace.TracerProvider, ctx context.Context) error { return tp.Shutdown(ctx) }
)

// @title           CME Gold Volume Scraper API
// @version         1.0
// @description     Scrapes CME gold trading volume totals and republishes them as JSON or HTML.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	zl, err := newLoggerFunc(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, config.AppName, cfg.AppVersion)
	if err != nil {
		zl.Fatal("failed to initialize tracer", zap.Error(err))
	}
	// ctx is cancelled before this runs, so pending spans get a context of their own.
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer flushCancel()
		if err := shutdownTracerFunc(tp, flushCtx); err != nil {
			zl.Warn("error shutting down tracer provider", zap.Error(err))
		}
	}()

	fetcher := provider.NewCMEVolumeProvider(tracer, cfg.TargetURL, cfg.UserAgent, cfg.FetchTimeout())
	volumeService := service.NewVolumeService(tracer, zl, fetcher, extract.NewExtractor(tracer))
	h := handler.New(tracer, zl, volumeService, handler.AppInfo{
		Name:      config.AppName,
		Version:   cfg.AppVersion,
		StartedAt: time.Now(),
	})

	r := newRouterFunc()
	r.Use(handler.Recovery(zl), handler.RequestLogger(zl))
	r.Use(otelgin.Middleware(config.AppName))
	r.SetHTMLTemplate(presenter.Templates())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The server-side write deadline leaves room for one full upstream fetch.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.FetchTimeout() + 10*time.Second,
	}

	go func() {
		zl.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("target_url", cfg.TargetURL),
			zap.Duration("fetch_timeout", cfg.FetchTimeout()),
		)
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	zl.Info("shutting down server")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exiting")
}
