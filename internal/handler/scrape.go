package handler

import (
	"errors"
	"net/http"

	"cme-volume-scraper/internal/extract"
	"cme-volume-scraper/internal/presenter"
	"cme-volume-scraper/internal/provider"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Scrape godoc
// @Summary      Scrape CME gold volume
// @Description  Fetches the CME gold volume page and returns the totals as a JSON envelope
// @Tags         volume
// @Produce      json
// @Param        tradeDate  query  string  false  "Trade date, YYYYMMDD (forwarded as-is)"
// @Success      200  {object}  presenter.Envelope
// @Failure      502  {object}  presenter.ErrorEnvelope
// @Failure      504  {object}  presenter.ErrorEnvelope
// @Router       /scrape [get]
func (h *Handler) Scrape(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.scrape")
	defer span.End()

	tradeDate := c.Query("tradeDate")
	span.SetAttributes(attribute.String("cme.trade_date", tradeDate))

	snap, err := h.scraper.Scrape(ctx, tradeDate)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.Success(snap, h.now()))
}

// View godoc
// @Summary      Scrape CME gold volume as HTML
// @Description  Same as /scrape but renders an HTML table; absent values show N/A
// @Tags         volume
// @Produce      html
// @Param        tradeDate  query  string  false  "Trade date, YYYYMMDD (forwarded as-is)"
// @Success      200  {string}  string  "HTML page"
// @Failure      502  {object}  presenter.ErrorEnvelope
// @Failure      504  {object}  presenter.ErrorEnvelope
// @Router       /view [get]
func (h *Handler) View(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.view")
	defer span.End()

	tradeDate := c.Query("tradeDate")
	span.SetAttributes(attribute.String("cme.trade_date", tradeDate))

	snap, err := h.scraper.Scrape(ctx, tradeDate)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, presenter.ViewTemplate, presenter.NewView(snap, h.now()))
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := errorStatus(err)
	h.logger.Warn("scrape request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
		zap.Error(err),
	)
	c.JSON(status, presenter.Failure(err.Error(), h.now()))
}

// errorStatus maps pipeline errors to HTTP status codes.
func errorStatus(err error) int {
	var fe *provider.FetchError
	if errors.As(err, &fe) {
		if fe.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	var ee *extract.ExtractionError
	if errors.As(err, &ee) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
