package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"stargazer/internal/config"
)

const parisGeocode = `{"status":"OK","results":[{"geometry":{"location":{"lat":48.8566,"lng":2.3522}}}]}`

const orionChart = `{"data":{"imageUrl":"https://widgets.astronomyapi.com/star-chart/generated/orion.png"}}`

const moonPhaseImage = `{"data":{"imageUrl":"https://widgets.astronomyapi.com/moon-phase/generated/moon.png"}}`

const marsPositions = `{"data":{"table":{"rows":[
	{"entry":{"id":"mars","name":"Mars"},"cells":[
		{"date":"2024-01-01T00:00:00.000-00:00",
		 "distance":{"fromEarth":{"au":"2.41","km":"360532800"}},
		 "position":{"equatorial":{"rightAscension":{"hours":"17.23"},"declination":{"degrees":"-23.1"}},
		             "constellation":{"id":"oph","short":"Oph","name":"Ophiuchus"}}}]}
]}}}`

const newsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>News</title>
<item><title>Meteor shower tonight</title><link>https://example.com/a</link></item>
</channel></rss>`

// upstream stands in for the external services during handler tests
type upstream struct {
	geocodeStatus   int
	geocodeBody     string
	starChartStatus int
	starChartBody   string
	positionsStatus int
	positionsBody   string
}

func healthyUpstream() *upstream {
	return &upstream{
		geocodeStatus:   200,
		geocodeBody:     parisGeocode,
		starChartStatus: 200,
		starChartBody:   orionChart,
		positionsStatus: 200,
		positionsBody:   marsPositions,
	}
}

func newTestServer(t *testing.T, up *upstream) *Server {
	t.Helper()

	serve := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}
	}

	geocode := httptest.NewServer(serve(up.geocodeStatus, up.geocodeBody))
	starChart := httptest.NewServer(serve(up.starChartStatus, up.starChartBody))
	positions := httptest.NewServer(serve(up.positionsStatus, up.positionsBody))
	moonPhase := httptest.NewServer(serve(200, moonPhaseImage))
	news := httptest.NewServer(serve(200, newsFeed))
	autocomplete := httptest.NewServer(serve(200, `{"status":"OK","predictions":[{"description":"Paris, France","place_id":"p1"}]}`))
	details := httptest.NewServer(serve(200, `{"status":"OK","result":{"geometry":{"location":{"lat":48.8566,"lng":2.3522}}}}`))
	t.Cleanup(func() {
		geocode.Close()
		starChart.Close()
		positions.Close()
		moonPhase.Close()
		news.Close()
		autocomplete.Close()
		details.Close()
	})

	cfg := &config.Config{
		AppID:           "test-app",
		AppSecret:       "test-secret",
		GoogleAPIKey:    "test-key",
		AutocompleteURL: autocomplete.URL,
		PlaceDetailsURL: details.URL,
		GeocodeURL:      geocode.URL,
		StarChartURL:    starChart.URL,
		MoonPhaseURL:    moonPhase.URL,
		PositionsURL:    positions.URL,
		SkyNewsFeedURL:  news.URL,
		HTTPTimeout:     5 * time.Second,
		ChartTimeout:    5 * time.Second,
		ChartsDir:       t.TempDir(),
	}

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return srv
}

func postObserve(t *testing.T, srv *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/observe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.SetupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestObserveParisScenario(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	rec := postObserve(t, srv, url.Values{
		"query":         {"Paris"},
		"date":          {"2024-01-01"},
		"constellation": {"ori"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	// Resolved coordinates are displayed
	if !strings.Contains(body, "48.8566") || !strings.Contains(body, "2.3522") {
		t.Error("Expected resolved Paris coordinates in the page")
	}
	// The star chart image is shown without an inline error
	if !strings.Contains(body, "star-chart/generated/orion.png") {
		t.Error("Expected star chart image URL in the page")
	}
	if strings.Contains(body, "Star chart:") {
		t.Error("Did not expect an inline star chart error")
	}
	// Positions table and plots render
	if !strings.Contains(body, "Mars") {
		t.Error("Expected Mars in the positions table")
	}
	if !strings.Contains(body, "/charts/") {
		t.Error("Expected a polar plot image URL in the page")
	}
	if !strings.Contains(body, "chart-planet-polar") {
		t.Error("Expected the interactive polar snippet in the page")
	}
	// Moon phase and news sections render too
	if !strings.Contains(body, "moon-phase/generated/moon.png") {
		t.Error("Expected moon phase image in the page")
	}
	if !strings.Contains(body, "Meteor shower tonight") {
		t.Error("Expected news item in the page")
	}
}

func TestObserveNoResultsKeepsQuery(t *testing.T) {
	up := healthyUpstream()
	up.geocodeBody = `{"status":"ZERO_RESULTS","results":[]}`
	srv := newTestServer(t, up)

	rec := postObserve(t, srv, url.Values{
		"query":         {"Nowhereville"},
		"date":          {"2024-01-01"},
		"constellation": {"ori"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	// Inline message, location field unchanged, no astronomy sections
	if !strings.Contains(body, "no locations found") {
		t.Error("Expected a no-results message in the page")
	}
	if !strings.Contains(body, `value="Nowhereville"`) {
		t.Error("Expected the location field to keep its value")
	}
	if strings.Contains(body, "star-chart/generated") {
		t.Error("Did not expect a star chart after a failed location resolution")
	}
}

func TestObservePartialFailureRendersRest(t *testing.T) {
	up := healthyUpstream()
	up.starChartStatus = 500
	up.starChartBody = `{"error":"upstream exploded"}`
	srv := newTestServer(t, up)

	rec := postObserve(t, srv, url.Values{
		"query":         {"Paris"},
		"date":          {"2024-01-01"},
		"constellation": {"ori"},
	})

	body := rec.Body.String()

	// Star chart failed with its own inline error
	if !strings.Contains(body, "Star chart:") {
		t.Error("Expected an inline star chart error")
	}
	// Positions still rendered
	if !strings.Contains(body, "Mars") {
		t.Error("Expected positions to render despite the star chart failure")
	}
}

func TestObserveAuthFailure(t *testing.T) {
	up := healthyUpstream()
	up.starChartStatus = 401
	up.positionsStatus = 401
	srv := newTestServer(t, up)

	rec := postObserve(t, srv, url.Values{
		"query":         {"Paris"},
		"date":          {"2024-01-01"},
		"constellation": {"ori"},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "rejected credentials") {
		t.Error("Expected an inline auth error message")
	}
}

func TestObserveInvalidDate(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	rec := postObserve(t, srv, url.Values{
		"query": {"Paris"},
		"date":  {"yesterday"},
	})

	if !strings.Contains(rec.Body.String(), "invalid date") {
		t.Error("Expected an inline invalid-date message")
	}
}

func TestObservePlaceDetailsPath(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	rec := postObserve(t, srv, url.Values{
		"query":         {"Paris, France"},
		"place_id":      {"p1"},
		"date":          {"2024-01-01"},
		"constellation": {"ori"},
	})

	if !strings.Contains(rec.Body.String(), "48.8566") {
		t.Error("Expected coordinates resolved via place details")
	}
}

func TestHandleSuggest(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=Paris", nil)
	rec := httptest.NewRecorder()
	srv.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp struct {
		Suggestions []struct {
			Description string `json:"description"`
			PlaceID     string `json:"place_id"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0].PlaceID != "p1" {
		t.Errorf("Unexpected suggestions: %+v", resp.Suggestions)
	}
}

func TestHandleSuggestEmptyQuery(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	req := httptest.NewRequest(http.MethodGet, "/api/suggest", nil)
	rec := httptest.NewRecorder()
	srv.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"suggestions":[]`) {
		t.Errorf("Expected empty suggestions, got %s", rec.Body.String())
	}
}

func TestHandleIndex(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Generate Star Map") {
		t.Error("Expected the form on the index page")
	}
	if !strings.Contains(body, "Orion") {
		t.Error("Expected Orion in the constellation selector")
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.SetupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", health["status"])
	}
}

func TestHandleChartFileTraversal(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())

	req := httptest.NewRequest(http.MethodGet, "/charts/../go.mod", nil)
	rec := httptest.NewRecorder()
	srv.HandleChartFile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for traversal attempt, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, healthyUpstream())
	routes := srv.SetupRoutes()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/"},
		{http.MethodGet, "/observe"},
		{http.MethodPost, "/api/suggest"},
		{http.MethodPost, "/health"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", tt.method, tt.path, rec.Code)
		}
	}
}
