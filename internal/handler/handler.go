package handler

import (
	"context"
	"net/http"
	"time"

	"cme-volume-scraper/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type VolumeScraper interface {
	Scrape(ctx context.Context, tradeDate string) (*domain.VolumeSnapshot, error)
}

// AppInfo describes the running process for / and /status.
type AppInfo struct {
	Name      string
	Version   string
	StartedAt time.Time
}

// Endpoint is one entry of the public route table.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Endpoints is fixed at build time and shared by /, the 404 handler and RegisterRoutes.
var Endpoints = []Endpoint{
	{http.MethodGet, "/", "Service description"},
	{http.MethodGet, "/scrape", "Scrape CME gold volume and return JSON (optional tradeDate=YYYYMMDD)"},
	{http.MethodGet, "/view", "Scrape CME gold volume and return an HTML table (optional tradeDate=YYYYMMDD)"},
	{http.MethodGet, "/health", "Liveness check"},
	{http.MethodGet, "/status", "Process status and version"},
}

func endpointPaths() []string {
	paths := make([]string, 0, len(Endpoints))
	for _, e := range Endpoints {
		paths = append(paths, e.Path)
	}
	return paths
}

type Handler struct {
	tracer  trace.Tracer
	logger  *zap.Logger
	scraper VolumeScraper
	info    AppInfo
	now     func() time.Time
}

func New(tracer trace.Tracer, logger *zap.Logger, scraper VolumeScraper, info AppInfo) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if info.StartedAt.IsZero() {
		info.StartedAt = time.Now()
	}
	return &Handler{
		tracer:  tracer,
		logger:  logger,
		scraper: scraper,
		info:    info,
		now:     time.Now,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	routes := map[string]gin.HandlerFunc{
		"/":       h.Home,
		"/scrape": h.Scrape,
		"/view":   h.View,
		"/health": h.Health,
		"/status": h.Status,
	}
	for _, e := range Endpoints {
		r.Handle(e.Method, e.Path, routes[e.Path])
	}
	r.HEAD("/health", h.Health)
	r.NoRoute(h.NotFound)
}
