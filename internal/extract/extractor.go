package extract

import (
	"context"
	"strings"
	"unicode/utf8"

	"cme-volume-scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// A header row must name at least this many metrics before the table is read column-wise.
const minHeaderMatches = 2

// Extractor turns the exchange volume page into a VolumeSnapshot.
type Extractor struct {
	tracer trace.Tracer
}

func NewExtractor(tracer trace.Tracer) *Extractor {
	return &Extractor{tracer: tracer}
}

// Extract parses html and fills every metric it can find. Missing labels and values
// that are not integers leave the field nil. It fails only when html is not a document.
func (e *Extractor) Extract(ctx context.Context, html string) (*domain.VolumeSnapshot, error) {
	_, span := e.tracer.Start(ctx, "extract.volume-snapshot")
	defer span.End()

	snap, err := Extract(html)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("extract.populated", snap.Populated()))
	return snap, nil
}

// Extract is the tracer-free form of Extractor.Extract.
func Extract(html string) (*domain.VolumeSnapshot, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	snap := &domain.VolumeSnapshot{
		LastUpdatedCT: domain.StringPtr(firstText(doc, lastUpdatedSelectors)),
		TradeDate:     domain.StringPtr(firstText(doc, tradeDateSelectors)),
		DataType:      domain.StringPtr(firstText(doc, dataTypeSelectors)),
	}

	columns := extractColumns(doc, snap)
	extractLabelRows(doc, snap, columns)

	return snap, nil
}

func parseDocument(html string) (*goquery.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, &ExtractionError{Reason: "empty document"}
	}
	if !utf8.ValidString(html) || strings.ContainsRune(html, 0) {
		return nil, &ExtractionError{Reason: "document is not text"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ExtractionError{Reason: "parse html", Err: err}
	}
	if doc.Find("head > *, body > *").Length() == 0 {
		return nil, &ExtractionError{Reason: "no html elements found"}
	}
	return doc, nil
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if t := cleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func rowCells(row *goquery.Selection) *goquery.Selection {
	return row.ChildrenFiltered("th, td")
}

// extractColumns reads the first table whose header row names the metrics, taking
// values from its totals row. It returns every metric that table has a column for,
// whether or not the value parsed.
func extractColumns(doc *goquery.Document, snap *domain.VolumeSnapshot) map[domain.Metric]int {
	var columns map[domain.Metric]int
	for _, sel := range tableSelectors {
		doc.Find(sel).EachWithBreak(func(_ int, table *goquery.Selection) bool {
			columns = readTable(table, snap)
			return columns == nil
		})
		if columns != nil {
			return columns
		}
	}
	return nil
}

// readTable returns nil when the table has no usable header or value row.
func readTable(table *goquery.Selection, snap *domain.VolumeSnapshot) map[domain.Metric]int {
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return nil
	}
	grid := layoutRows(rows)

	headerIdx, columns := -1, map[domain.Metric]int(nil)
	for i, row := range grid {
		c := matchColumns(row.headers())
		if len(c) > len(columns) {
			headerIdx, columns = i, c
		}
	}
	if len(columns) < minHeaderMatches {
		return nil
	}

	valueIdx := totalsRow(grid, headerIdx)
	if valueIdx < 0 {
		return nil
	}

	values := grid[valueIdx].byColumn()
	for m, col := range columns {
		if v, ok := parseVolume(values[col]); ok {
			snap.SetMetric(m, v)
		}
	}
	return columns
}

// matchColumns assigns header positions to metrics. Exact matches are settled for every
// metric before substring matches are tried, and each column is claimed at most once.
func matchColumns(headers []string) map[domain.Metric]int {
	columns := make(map[domain.Metric]int)
	claimed := make(map[int]bool)

	assign := func(match func(string, []string) bool) {
		for _, m := range domain.Metrics {
			if _, done := columns[m]; done {
				continue
			}
			for i, h := range headers {
				if !claimed[i] && match(h, metricLabels[m]) {
					columns[m] = i
					claimed[i] = true
					break
				}
			}
		}
	}
	assign(matchesExact)
	assign(matchesContains)
	return columns
}

// totalsRow prefers the row labelled "Totals"; otherwise the first data row below the
// header. It returns -1 when there is neither.
func totalsRow(grid []gridRow, headerIdx int) int {
	first := -1
	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		if len(row.cells) == 0 {
			continue
		}
		if strings.HasPrefix(normalize(row.cells[0].text), totalsRowPrefix) {
			return i
		}
		if first < 0 && row.hasData {
			first = i
		}
	}
	return first
}

type labelPair struct {
	label string
	value string
}

// extractLabelRows fills metrics the volume table has no column for from label/value
// layouts: a table row whose first cell is the label, or a dt/dd pair. Only exact label
// matches count here, since such rows appear all over the page.
func extractLabelRows(doc *goquery.Document, snap *domain.VolumeSnapshot, skip map[domain.Metric]int) {
	var pairs []labelPair
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row)
		if cells.Length() < 2 {
			return
		}
		pairs = append(pairs, labelPair{
			label: normalize(cells.Eq(0).Text()),
			value: cells.Eq(1).Text(),
		})
	})
	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		pairs = append(pairs, labelPair{label: normalize(dt.Text()), value: dd.Text()})
	})

	claimed := make(map[int]bool)
	for _, m := range domain.Metrics {
		if _, ok := skip[m]; ok || snap.Metric(m) != nil {
			continue
		}
		for i, p := range pairs {
			if claimed[i] || !matchesExact(p.label, metricLabels[m]) {
				continue
			}
			if v, ok := parseVolume(p.value); ok {
				snap.SetMetric(m, v)
				claimed[i] = true
				break
			}
		}
	}
}
