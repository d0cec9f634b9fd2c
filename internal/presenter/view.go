package presenter

import (
	_ "embed"
	"html/template"
	"time"

	"cme-volume-scraper/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ViewTemplate = "view.html"
	Placeholder  = "N/A"
)

// printer groups digits the way the exchange publishes them.
var printer = message.NewPrinter(language.English)

//go:embed templates/view.html
var viewHTML string

// Row is one line of the HTML volume table.
type Row struct {
	Label string
	Value string
}

// View is the data handed to the view.html template.
type View struct {
	Title       string
	URL         string
	DataType    string
	LastUpdated string
	TradeDate   string
	Rows        []Row
	GeneratedAt string
}

func NewView(snap *domain.VolumeSnapshot, now time.Time) View {
	v := View{
		Title:       "CME Gold Volume (Totals)",
		URL:         domain.Deref(snap.URL, Placeholder),
		DataType:    domain.Deref(snap.DataType, Placeholder),
		LastUpdated: domain.Deref(snap.LastUpdatedCT, Placeholder),
		TradeDate:   domain.Deref(snap.TradeDate, Placeholder),
		Rows:        make([]Row, 0, len(domain.Metrics)),
		GeneratedAt: now.Format("2006-01-02 15:04:05"),
	}
	for _, m := range domain.Metrics {
		v.Rows = append(v.Rows, Row{Label: m.Label(), Value: FormatValue(snap.Metric(m))})
	}
	return v
}

// FormatValue renders v with thousands separators, or the placeholder when absent.
func FormatValue(v *int64) string {
	if v == nil {
		return Placeholder
	}
	return printer.Sprintf("%d", *v)
}

// Templates returns the parsed HTML templates for gin's renderer.
func Templates() *template.Template {
	return template.Must(template.New(ViewTemplate).Parse(viewHTML))
}
