package provider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestProvider(targetURL string, rt roundTripFunc) *CMEVolumeProvider {
	p := NewCMEVolumeProvider(noop.NewTracerProvider().Tracer("test"), targetURL, "test-agent/1.0", time.Second)
	if rt != nil {
		p.client = &http.Client{Transport: rt}
	}
	return p
}

func htmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestFetchPageForwardsTradeDate(t *testing.T) {
	var gotURL, gotUA string
	p := newTestProvider("https://example.com/gold.volume.html", func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		gotUA = req.Header.Get("User-Agent")
		return htmlResponse(http.StatusOK, "<html><body><table></table></body></html>"), nil
	})

	page, err := p.FetchPage(context.Background(), "20241201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotURL != "https://example.com/gold.volume.html?tradeDate=20241201" {
		t.Fatalf("unexpected request url: %s", gotURL)
	}
	if gotUA != "test-agent/1.0" {
		t.Fatalf("unexpected user agent: %s", gotUA)
	}
	if page.URL != gotURL || page.StatusCode != http.StatusOK {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Body == "" {
		t.Fatal("expected body")
	}
}

func TestFetchPageWithoutTradeDate(t *testing.T) {
	var rawQuery string
	p := newTestProvider("https://example.com/gold.volume.html", func(req *http.Request) (*http.Response, error) {
		rawQuery = req.URL.RawQuery
		return htmlResponse(http.StatusOK, "<html></html>"), nil
	})

	if _, err := p.FetchPage(context.Background(), "   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rawQuery != "" {
		t.Fatalf("expected no query, got %q", rawQuery)
	}
}

func TestRequestURLPassesValueThroughUnvalidated(t *testing.T) {
	p := newTestProvider("https://example.com/v.html?foo=bar", nil)
	got, err := p.RequestURL("not-a-date")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://example.com/v.html?foo=bar&tradeDate=not-a-date" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestFetchPageNon2xx(t *testing.T) {
	p := newTestProvider("https://example.com/gold.volume.html", func(req *http.Request) (*http.Response, error) {
		return htmlResponse(http.StatusForbidden, "denied"), nil
	})

	_, err := p.FetchPage(context.Background(), "")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", fe.StatusCode)
	}
	if fe.Timeout() {
		t.Fatal("status error must not be reported as timeout")
	}
}

func TestFetchPageTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	p := newTestProvider("https://example.com/gold.volume.html", func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := p.FetchPage(context.Background(), "")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestFetchPageTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	p := NewCMEVolumeProvider(noop.NewTracerProvider().Tracer("test"), srv.URL, "ua", 50*time.Millisecond)

	start := time.Now()
	_, err := p.FetchPage(context.Background(), "")
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("fetch took too long: %s", elapsed)
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if !fe.Timeout() {
		t.Fatalf("expected timeout, got %v", fe.Err)
	}
}

func TestFetchPageRejectsOversizedBody(t *testing.T) {
	p := newTestProvider("https://example.com/gold.volume.html", func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(bytes.NewReader(bytes.Repeat([]byte("a"), maxPageBytes+1))),
			Header:     make(http.Header),
		}, nil
	})

	page, err := p.FetchPage(context.Background(), "")
	if page != nil {
		t.Fatal("expected no page")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if !errors.Is(err, ErrPageTooLarge) {
		t.Fatalf("expected ErrPageTooLarge, got %v", err)
	}
	if fe.Timeout() {
		t.Fatal("size limit is not a timeout")
	}
}

func TestFetchPageAcceptsBodyAtLimit(t *testing.T) {
	p := newTestProvider("https://example.com/gold.volume.html", func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(bytes.NewReader(bytes.Repeat([]byte("a"), maxPageBytes))),
			Header:     make(http.Header),
		}, nil
	})

	page, err := p.FetchPage(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Body) != maxPageBytes {
		t.Fatalf("unexpected body length: %d", len(page.Body))
	}
}
