package domain

// Metric identifies one of the volume "totals" columns published by the exchange.
type Metric int

const (
	MetricGlobex Metric = iota
	MetricOpenOutcry
	MetricPNTClearPort
	MetricTotalVolume
	MetricBlockTrades
	MetricEFP
	MetricEFR
	MetricTAS
	MetricDeliveries
	MetricAtClose
	MetricChange
)

// Metrics lists every metric in display order.
var Metrics = []Metric{
	MetricGlobex,
	MetricOpenOutcry,
	MetricPNTClearPort,
	MetricTotalVolume,
	MetricBlockTrades,
	MetricEFP,
	MetricEFR,
	MetricTAS,
	MetricDeliveries,
	MetricAtClose,
	MetricChange,
}

var metricKeys = map[Metric]string{
	MetricGlobex:       "totals_globex",
	MetricOpenOutcry:   "totals_open_outcry",
	MetricPNTClearPort: "totals_pnt_clearport",
	MetricTotalVolume:  "totals_total_volume",
	MetricBlockTrades:  "totals_block_trades",
	MetricEFP:          "totals_efp",
	MetricEFR:          "totals_efr",
	MetricTAS:          "totals_tas",
	MetricDeliveries:   "totals_deliveries",
	MetricAtClose:      "totals_at_close",
	MetricChange:       "totals_change",
}

var metricLabels = map[Metric]string{
	MetricGlobex:       "Globex",
	MetricOpenOutcry:   "Open Outcry",
	MetricPNTClearPort: "PNT/ClearPort",
	MetricTotalVolume:  "Total Volume",
	MetricBlockTrades:  "Block Trades",
	MetricEFP:          "EFP",
	MetricEFR:          "EFR",
	MetricTAS:          "TAS",
	MetricDeliveries:   "Deliveries",
	MetricAtClose:      "At Close",
	MetricChange:       "Change",
}

// Key returns the JSON field name used in API responses.
func (m Metric) Key() string {
	return metricKeys[m]
}

// Label returns the human readable column name.
func (m Metric) Label() string {
	return metricLabels[m]
}

func (m Metric) String() string {
	return m.Key()
}
