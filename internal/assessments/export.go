package assessments

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Export is the export endpoint payload. Data holds the record slice for
// JSON exports and the rendered CSV text for CSV exports. Total is set on
// JSON exports even when zero records match; CSV payloads omit it.
type Export struct {
	Format     string     `json:"format"`
	Data       any        `json:"data"`
	Total      *int       `json:"total,omitempty"`
	Filename   string     `json:"filename,omitempty"`
	ExportedAt *time.Time `json:"exported_at,omitempty"`
}

// csvColumns is the flattened summary column set for spreadsheet review. It
// carries the clinically interesting features rather than all twenty.
var csvColumns = []string{
	"ID", "Date", "Stress Level", "Confidence",
	"Anxiety Level", "Depression", "Self Esteem", "Sleep Quality",
	"Study Load", "Academic Performance", "Social Support",
	"Notes",
}

// buildExport renders a newest-first record slice in the requested format.
func buildExport(records []Assessment, format string, now time.Time) (*Export, error) {
	switch format {
	case FormatCSV:
		data, err := renderCSV(records)
		if err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
		return &Export{
			Format:   FormatCSV,
			Data:     data,
			Filename: fmt.Sprintf("stress_assessments_%s.csv", now.Format("20060102")),
		}, nil
	case FormatJSON:
		total := len(records)
		return &Export{
			Format:     FormatJSON,
			Data:       records,
			Total:      &total,
			ExportedAt: &now,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func renderCSV(records []Assessment) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvColumns); err != nil {
		return "", err
	}

	for _, a := range records {
		var notes string
		if a.Notes != nil {
			notes = *a.Notes
		}

		row := []string{
			a.ID.String(),
			a.CreatedAt.Format(time.RFC3339),
			a.StressLevel,
			fmt.Sprintf("%.2f%%", a.ConfidenceScore*100),
			fmt.Sprintf("%d", a.Features.AnxietyLevel),
			fmt.Sprintf("%d", a.Features.Depression),
			fmt.Sprintf("%d", a.Features.SelfEsteem),
			fmt.Sprintf("%d", a.Features.SleepQuality),
			fmt.Sprintf("%d", a.Features.StudyLoad),
			fmt.Sprintf("%d", a.Features.AcademicPerformance),
			fmt.Sprintf("%d", a.Features.SocialSupport),
			notes,
		}

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
