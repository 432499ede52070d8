package dashboard

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/schema"
)

func TestResearchRowFlattensFeatures(t *testing.T) {
	row := ResearchRow{
		FeatureVector:   schema.FeatureVector{AnxietyLevel: 14, Depression: 7},
		StressLevel:     model.LabelModerateRisk,
		ConfidenceScore: 0.8123,
		Date:            time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(payload)

	if !strings.Contains(body, `"anxiety_level":14`) {
		t.Errorf("payload = %s, want features inlined", body)
	}
	if !strings.Contains(body, `"stress_level":"Moderate Risk"`) {
		t.Errorf("payload = %s, want stress level beside features", body)
	}
	if strings.Contains(body, "user") {
		t.Errorf("payload = %s, must not reference a user", body)
	}
}
