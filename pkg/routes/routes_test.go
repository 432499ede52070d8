package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campuswell/pulse/pkg/routes"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRegisterHandlers(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/assessments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: ok},
			{Method: "GET", Pattern: "/user/{userId}", Handler: ok},
			{Method: "POST", Pattern: "/{userId}", Handler: ok},
		},
	})

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"find by id", "GET", "/assessments/abc"},
		{"list by user", "GET", "/assessments/user/abc"},
		{"submit", "POST", "/assessments/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status: got %d, want 200", rec.Code)
			}
		})
	}
}

func TestLiteralSegmentBeatsWildcard(t *testing.T) {
	mux := http.NewServeMux()

	var hit string
	routes.Register(mux, routes.Group{
		Prefix: "/assessments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: func(w http.ResponseWriter, r *http.Request) {
				hit = "id"
			}},
			{Method: "GET", Pattern: "/trends", Handler: func(w http.ResponseWriter, r *http.Request) {
				hit = "trends"
			}},
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/assessments/trends", nil)
	mux.ServeHTTP(rec, req)

	if hit != "trends" {
		t.Errorf("matched %q, want trends", hit)
	}
}

func TestNestedGroups(t *testing.T) {
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/dashboard",
		Children: []routes.Group{
			{
				Prefix: "/reports",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/weekly", Handler: ok},
				},
			},
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard/reports/weekly", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("nested route: got %d, want 200", rec.Code)
	}
}
