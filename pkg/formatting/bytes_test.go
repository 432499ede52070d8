package formatting_test

import (
	"testing"

	"github.com/campuswell/pulse/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 512, 0, "512 B"},
		{"kilobytes", 2048, 0, "2 KB"},
		{"megabytes", 1536 * 1024, 1, "1.5 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, 0, "3 GB"},
		{"negative precision clamps", 1024, -3, "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare number", "1024", 1024, false},
		{"bytes", "100B", 100, false},
		{"kilobytes", "4KB", 4 * 1024, false},
		{"megabytes", "1MB", 1024 * 1024, false},
		{"fractional", "1.5MB", 1536 * 1024, false},
		{"lowercase unit", "2mb", 2 * 1024 * 1024, false},
		{"spaced", "10 GB", 10 * 1024 * 1024 * 1024, false},
		{"empty", "", 0, true},
		{"unknown unit", "5XB", 0, true},
		{"not a number", "lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("got %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
