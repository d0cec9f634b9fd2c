package domain

// VolumeSnapshot is the set of volume figures extracted from a single fetch of the
// exchange page. Nil fields were not found on the page and serialize as null.
type VolumeSnapshot struct {
	URL           *string `json:"url"`
	DataType      *string `json:"data_type"`
	LastUpdatedCT *string `json:"last_updated_ct"`
	TradeDate     *string `json:"trade_date"`

	TotalsGlobex       *int64 `json:"totals_globex"`
	TotalsOpenOutcry   *int64 `json:"totals_open_outcry"`
	TotalsPNTClearPort *int64 `json:"totals_pnt_clearport"`
	TotalsTotalVolume  *int64 `json:"totals_total_volume"`
	TotalsBlockTrades  *int64 `json:"totals_block_trades"`
	TotalsEFP          *int64 `json:"totals_efp"`
	TotalsEFR          *int64 `json:"totals_efr"`
	TotalsTAS          *int64 `json:"totals_tas"`
	TotalsDeliveries   *int64 `json:"totals_deliveries"`
	TotalsAtClose      *int64 `json:"totals_at_close"`
	TotalsChange       *int64 `json:"totals_change"`
}

func (s *VolumeSnapshot) field(m Metric) **int64 {
	switch m {
	case MetricGlobex:
		return &s.TotalsGlobex
	case MetricOpenOutcry:
		return &s.TotalsOpenOutcry
	case MetricPNTClearPort:
		return &s.TotalsPNTClearPort
	case MetricTotalVolume:
		return &s.TotalsTotalVolume
	case MetricBlockTrades:
		return &s.TotalsBlockTrades
	case MetricEFP:
		return &s.TotalsEFP
	case MetricEFR:
		return &s.TotalsEFR
	case MetricTAS:
		return &s.TotalsTAS
	case MetricDeliveries:
		return &s.TotalsDeliveries
	case MetricAtClose:
		return &s.TotalsAtClose
	case MetricChange:
		return &s.TotalsChange
	}
	return nil
}

// Metric returns the value for m, or nil when it is absent.
func (s *VolumeSnapshot) Metric(m Metric) *int64 {
	f := s.field(m)
	if f == nil {
		return nil
	}
	return *f
}

// SetMetric stores v for m. Unknown metrics are ignored.
func (s *VolumeSnapshot) SetMetric(m Metric, v int64) {
	if f := s.field(m); f != nil {
		*f = &v
	}
}

// Populated counts the metrics that have a value.
func (s *VolumeSnapshot) Populated() int {
	n := 0
	for _, m := range Metrics {
		if s.Metric(m) != nil {
			n++
		}
	}
	return n
}

// StringPtr returns nil for an empty string.
func StringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Deref returns the pointed-to string or fallback when nil.
func Deref(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
