package service

import (
	"context"
	"strings"

	"cme-volume-scraper/internal/domain"
	"cme-volume-scraper/internal/provider"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type PageFetcher interface {
	FetchPage(ctx context.Context, tradeDate string) (*provider.Page, error)
}

type SnapshotExtractor interface {
	Extract(ctx context.Context, html string) (*domain.VolumeSnapshot, error)
}

// VolumeService runs one fetch and one extraction per call. It holds no state between calls.
type VolumeService struct {
	tracer    trace.Tracer
	logger    *zap.Logger
	fetcher   PageFetcher
	extractor SnapshotExtractor
}

func NewVolumeService(tracer trace.Tracer, logger *zap.Logger, fetcher PageFetcher, extractor SnapshotExtractor) *VolumeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VolumeService{
		tracer:    tracer,
		logger:    logger,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Scrape fetches the volume page for tradeDate (blank for the latest session) and
// extracts a snapshot. Errors are *provider.FetchError or *extract.ExtractionError.
func (s *VolumeService) Scrape(ctx context.Context, tradeDate string) (*domain.VolumeSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "volume-service.scrape")
	defer span.End()

	tradeDate = strings.TrimSpace(tradeDate)
	span.SetAttributes(attribute.String("cme.trade_date", tradeDate))

	page, err := s.fetcher.FetchPage(ctx, tradeDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		s.logger.Warn("fetch volume page failed", zap.String("trade_date", tradeDate), zap.Error(err))
		return nil, err
	}

	snap, err := s.extractor.Extract(ctx, page.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extract failed")
		s.logger.Warn("extract volume snapshot failed",
			zap.String("url", page.URL),
			zap.Int("bytes", len(page.Body)),
			zap.Error(err),
		)
		return nil, err
	}

	snap.URL = domain.StringPtr(page.URL)
	if snap.TradeDate == nil {
		snap.TradeDate = domain.StringPtr(tradeDate)
	}

	populated := snap.Populated()
	span.SetAttributes(attribute.Int("cme.metrics_populated", populated))
	if populated < len(domain.Metrics) {
		s.logger.Info("volume snapshot incomplete",
			zap.String("url", page.URL),
			zap.Int("populated", populated),
			zap.Int("expected", len(domain.Metrics)),
		)
	}
	return snap, nil
}
