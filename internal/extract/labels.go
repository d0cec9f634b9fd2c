package extract

import "cme-volume-scraper/internal/domain"

// The page layout is owned by the exchange and changes without notice. Every selector
// and label the extractor relies on lives in this file.

// metricLabels maps each metric to the header or row labels it may appear under.
// Aliases are compared after normalize().
var metricLabels = map[domain.Metric][]string{
	domain.MetricGlobex:       {"globex", "cme globex"},
	domain.MetricOpenOutcry:   {"open outcry", "floor"},
	domain.MetricPNTClearPort: {"pnt clearport", "pnt/clearport", "pnt / clearport", "clearport"},
	domain.MetricTotalVolume:  {"total volume", "volume total"},
	domain.MetricBlockTrades:  {"block trades", "block"},
	domain.MetricEFP:          {"efp"},
	domain.MetricEFR:          {"efr"},
	domain.MetricTAS:          {"tas", "trade at settlement"},
	domain.MetricDeliveries:   {"deliveries", "delivery"},
	domain.MetricAtClose:      {"at close", "at-close"},
	domain.MetricChange:       {"change", "chg"},
}

// tableSelectors are searched in order; the first table carrying any metric header wins.
var tableSelectors = []string{
	".main-table-wrapper table",
	"table",
}

// totalsRowPrefix marks the summary row of the volume table.
const totalsRowPrefix = "total"

var (
	lastUpdatedSelectors = []string{".timestamp .date", "[data-last-updated]", ".last-updated"}
	tradeDateSelectors   = []string{".trade-date", "[data-trade-date]"}
	dataTypeSelectors    = []string{".data-type", "[data-data-type]"}
)
