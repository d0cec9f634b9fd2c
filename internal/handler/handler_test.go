package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"cme-volume-scraper/internal/domain"
	"cme-volume-scraper/internal/presenter"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubScraper struct {
	snap      *domain.VolumeSnapshot
	err       error
	calls     int
	tradeDate string
}

func (s *stubScraper) Scrape(ctx context.Context, tradeDate string) (*domain.VolumeSnapshot, error) {
	s.calls++
	s.tradeDate = tradeDate
	if s.err != nil {
		return nil, s.err
	}
	return s.snap, nil
}

func newTestHandler(scraper VolumeScraper) *Handler {
	return New(noop.NewTracerProvider().Tracer("test"), zap.NewNop(), scraper, AppInfo{
		Name:    "cme-gold-scraper",
		Version: "9.9.9",
	})
}

func routerFor(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.SetHTMLTemplate(presenter.Templates())
	h.RegisterRoutes(r)
	return r
}

func newTestRouter(t *testing.T, scraper VolumeScraper) *gin.Engine {
	t.Helper()
	return routerFor(newTestHandler(scraper))
}

func TestHome(t *testing.T) {
	scraper := &stubScraper{}
	r := newTestRouter(t, scraper)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		Name      string     `json:"name"`
		Version   string     `json:"version"`
		Endpoints []Endpoint `json:"endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Name != "cme-gold-scraper" || resp.Version != "9.9.9" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if len(resp.Endpoints) != len(Endpoints) {
		t.Fatalf("expected %d endpoints, got %d", len(Endpoints), len(resp.Endpoints))
	}
	if scraper.calls != 0 {
		t.Fatal("home must not scrape")
	}
}

func TestNotFound(t *testing.T) {
	r := newTestRouter(t, &stubScraper{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	var resp struct {
		OK        bool     `json:"ok"`
		Error     string   `json:"error"`
		Available []string `json:"available_endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.OK || resp.Error != "Endpoint not found" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	want := []string{"/", "/scrape", "/view", "/health", "/status"}
	if len(resp.Available) != len(want) {
		t.Fatalf("unexpected endpoints: %v", resp.Available)
	}
	for i := range want {
		if resp.Available[i] != want[i] {
			t.Fatalf("unexpected endpoints: %v", resp.Available)
		}
	}
}

func TestRecoveryReturnsJSONEnvelope(t *testing.T) {
	r := newTestRouter(t, &stubScraper{})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	var resp presenter.ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.OK || resp.Error != "Internal server error" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
