package extract

import "fmt"

// ExtractionError means the input could not be treated as an HTML document at all.
// Missing or unparseable fields are never reported this way.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract volume: %s: %v", e.Reason, e.Err)
	}
	return "extract volume: " + e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
