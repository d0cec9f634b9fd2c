package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxPageBytes = 10 << 20

// ErrPageTooLarge is returned when the page exceeds maxPageBytes.
var ErrPageTooLarge = errors.New("page exceeds size limit")

// Page is the raw HTML returned by the exchange.
type Page struct {
	URL        string
	StatusCode int
	Body       string
}

// CMEVolumeProvider fetches the CME volume page. It makes exactly one attempt per call.
type CMEVolumeProvider struct {
	client    *http.Client
	targetURL string
	userAgent string
	tracer    trace.Tracer
}

func NewCMEVolumeProvider(tracer trace.Tracer, targetURL, userAgent string, timeout time.Duration) *CMEVolumeProvider {
	return &CMEVolumeProvider{
		client:    NewHTTPClient(timeout),
		targetURL: targetURL,
		userAgent: userAgent,
		tracer:    tracer,
	}
}

// RequestURL returns the URL fetched for tradeDate. A blank tradeDate leaves the
// target URL untouched; anything else is forwarded verbatim.
func (p *CMEVolumeProvider) RequestURL(tradeDate string) (string, error) {
	u, err := url.Parse(p.targetURL)
	if err != nil {
		return "", fmt.Errorf("parse target url: %w", err)
	}
	if tradeDate = strings.TrimSpace(tradeDate); tradeDate != "" {
		q := u.Query()
		q.Set("tradeDate", tradeDate)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (p *CMEVolumeProvider) FetchPage(ctx context.Context, tradeDate string) (*Page, error) {
	ctx, span := p.tracer.Start(ctx, "cme.fetch-page")
	defer span.End()

	reqURL, err := p.RequestURL(tradeDate)
	if err != nil {
		return nil, &FetchError{URL: p.targetURL, Err: err}
	}
	span.SetAttributes(
		attribute.String("http.url", reqURL),
		attribute.String("cme.trade_date", tradeDate),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{URL: reqURL, Err: err}
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, &FetchError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		span.SetStatus(codes.Error, resp.Status)
		return nil, &FetchError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("cme volume page returned %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes+1))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body failed")
		return nil, &FetchError{URL: reqURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxPageBytes {
		span.SetStatus(codes.Error, "page too large")
		return nil, &FetchError{URL: reqURL, Err: ErrPageTooLarge}
	}

	return &Page{
		URL:        reqURL,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
