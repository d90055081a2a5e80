package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sadopc/reviewr/internal/engine"
)

// Report is the exported dashboard with a timestamp.
type Report struct {
	ExportedAt string           `json:"exported_at" yaml:"exported_at"`
	Dashboard  engine.Dashboard `json:"dashboard" yaml:"dashboard"`
}

// NewReport stamps d with now.
func NewReport(d engine.Dashboard, now time.Time) Report {
	return Report{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Dashboard:  d,
	}
}

func ToJSON(out io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
