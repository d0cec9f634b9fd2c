package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cme-volume-scraper/internal/config"
	"cme-volume-scraper/internal/domain"
	"cme-volume-scraper/internal/extract"
	"cme-volume-scraper/internal/logger"
	"cme-volume-scraper/internal/provider"
	"cme-volume-scraper/internal/service"
	"cme-volume-scraper/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const toolName = "scrape_gold_volume"

type scraper interface {
	Scrape(ctx context.Context, tradeDate string) (*domain.VolumeSnapshot, error)
}

type ScrapeInput struct {
	TradeDate string `json:"trade_date,omitempty" jsonschema:"trade date in YYYYMMDD form; omit for the latest session"`
}

type ScrapeOutput struct {
	Snapshot domain.VolumeSnapshot `json:"snapshot"`
}

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initTracerFunc = tracing.InitTracer
	runServerFunc  = func(ctx context.Context, s *mcp.Server) error {
		return s.Run(ctx, &mcp.StdioTransport{})
	}
)

func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()

	// stdout carries the protocol, so logs go to stderr.
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, tracer, err := initTracerFunc(ctx, config.AppName+"-mcp", cfg.AppVersion)
	if err != nil {
		zl.Fatal("failed to initialize tracer", zap.Error(err))
	}
	defer tp.Shutdown(context.Background())

	fetcher := provider.NewCMEVolumeProvider(tracer, cfg.TargetURL, cfg.UserAgent, cfg.FetchTimeout())
	svc := service.NewVolumeService(tracer, zl, fetcher, extract.NewExtractor(tracer))

	server := newServer(cfg.AppVersion, svc)
	zl.Info("mcp server listening on stdio", zap.String("tool", toolName))
	if err := runServerFunc(ctx, server); err != nil && ctx.Err() == nil {
		zl.Error("mcp server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func newServer(version string, s scraper) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: config.AppName, Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        toolName,
		Description: "Fetch the CME gold volume page and return the totals (Globex, Open Outcry, PNT/ClearPort, Total Volume, Block Trades, EFP, EFR, TAS, Deliveries, At Close, Change). Missing values are null.",
	}, scrapeHandler(s))
	return server
}

func scrapeHandler(s scraper) mcp.ToolHandlerFor[ScrapeInput, ScrapeOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in ScrapeInput) (*mcp.CallToolResult, ScrapeOutput, error) {
		snap, err := s.Scrape(ctx, in.TradeDate)
		if err != nil {
			return nil, ScrapeOutput{}, err
		}
		return nil, ScrapeOutput{Snapshot: *snap}, nil
	}
}
