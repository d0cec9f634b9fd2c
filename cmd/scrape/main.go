package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cme-volume-scraper/internal/config"
	"cme-volume-scraper/internal/domain"
	"cme-volume-scraper/internal/extract"
	"cme-volume-scraper/internal/presenter"
	"cme-volume-scraper/internal/provider"
	"cme-volume-scraper/internal/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

type scraper interface {
	Scrape(ctx context.Context, tradeDate string) (*domain.VolumeSnapshot, error)
}

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	newScraperFunc = func(cfg *config.Config) scraper {
		tracer := noop.NewTracerProvider().Tracer(config.AppName)
		fetcher := provider.NewCMEVolumeProvider(tracer, cfg.TargetURL, cfg.UserAgent, cfg.FetchTimeout())
		return service.NewVolumeService(tracer, nil, fetcher, extract.NewExtractor(tracer))
	}
	nowFunc = time.Now
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scrape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tradeDate := fs.String("trade-date", "", "trade date to request, YYYYMMDD (default: latest)")
	format := fs.String("format", formatJSON, "output format: json or table")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *format != formatJSON && *format != formatTable {
		fmt.Fprintf(stderr, "unsupported format %q\n", *format)
		return 2
	}

	loadEnvFunc()
	cfg := loadConfigFunc()

	snap, err := newScraperFunc(cfg).Scrape(context.Background(), *tradeDate)
	if err != nil {
		if *format == formatJSON {
			if werr := writeJSON(stdout, presenter.Failure(err.Error(), nowFunc())); werr != nil {
				fmt.Fprintf(stderr, "write output: %v\n", werr)
			}
		} else {
			fmt.Fprintf(stderr, "scrape failed: %v\n", err)
		}
		return 1
	}

	if *format == formatTable {
		_, err = fmt.Fprintln(stdout, renderTable(presenter.NewView(snap, nowFunc())))
	} else {
		err = writeJSON(stdout, presenter.Success(snap, nowFunc()))
	}
	if err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

func renderTable(v presenter.View) string {
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{r.Label, r.Value})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Field", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return valueStyle
			default:
				return labelStyle
			}
		})

	meta := fmt.Sprintf("Data Type: %s | Last Updated (CT): %s | Trade Date: %s",
		v.DataType, v.LastUpdated, v.TradeDate)
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(v.Title), meta, t.String())
}
