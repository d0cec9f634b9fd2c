package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"cme-volume-scraper/internal/config"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var served *http.Server
	restore := stubServerDeps(func(srv *http.Server) { served = srv })
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}

	if served == nil {
		t.Fatal("expected http server to be started")
	}
	if served.Addr != ":18080" {
		t.Fatalf("unexpected addr: %s", served.Addr)
	}
}

func TestMainFlushesTracerWithLiveContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	restore := stubServerDeps(func(*http.Server) {})
	defer restore()

	var flushErr error
	var hasDeadline, called bool
	shutdownTracerFunc = func(tp *sdktrace.TracerProvider, ctx context.Context) error {
		called = true
		flushErr = ctx.Err()
		_, hasDeadline = ctx.Deadline()
		return tp.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}

	if !called {
		t.Fatal("expected tracer provider to be shut down")
	}
	if flushErr != nil {
		t.Fatalf("tracer shutdown got a finished context: %v", flushErr)
	}
	if !hasDeadline {
		t.Fatal("expected tracer shutdown context to carry a deadline")
	}
}

func stubServerDeps(onStart func(*http.Server)) func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origNewLogger := newLoggerFunc
	origInitTracer := initTracerFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc
	origShutdownTracer := shutdownTracerFunc

	started := make(chan struct{})

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{
			Port:                18080,
			TargetURL:           config.DefaultTargetURL,
			UserAgent:           "test",
			FetchTimeoutSecs:    1,
			ShutdownTimeoutSecs: 1,
			LogLevel:            "error",
			AppVersion:          "test",
		}
	}
	newLoggerFunc = func(string) (*zap.Logger, error) { return zap.NewNop(), nil }
	initTracerFunc = func(ctx context.Context, name, version string) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) { <-started }
	startHTTPServerFunc = func(srv *http.Server) error {
		onStart(srv)
		close(started)
		return http.ErrServerClosed
	}
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		newLoggerFunc = origNewLogger
		initTracerFunc = origInitTracer
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
		shutdownTracerFunc = origShutdownTracer
	}
}
