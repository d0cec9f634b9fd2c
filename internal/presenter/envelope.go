package presenter

import (
	"time"

	"cme-volume-scraper/internal/domain"
)

// Envelope is the JSON body of a successful scrape.
type Envelope struct {
	OK        bool                   `json:"ok"`
	Data      *domain.VolumeSnapshot `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

// ErrorEnvelope is the JSON body of any failed request.
type ErrorEnvelope struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
}

func Success(snap *domain.VolumeSnapshot, now time.Time) Envelope {
	return Envelope{OK: true, Data: snap, Timestamp: formatTimestamp(now)}
}

func Failure(msg string, now time.Time) ErrorEnvelope {
	return ErrorEnvelope{OK: false, Error: msg, Timestamp: formatTimestamp(now)}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
