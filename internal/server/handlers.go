package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stargazer/internal/apperrors"
	"stargazer/internal/models"
	"stargazer/internal/parse"
)

// HandleIndex serves the form page with an idle session
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := s.newSession()
	sess.Date = time.Now().UTC().Format("2006-01-02")
	s.render(w, sess)
}

// HandleSuggest returns autocomplete candidates for the location box as JSON
func (s *Server) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		json.NewEncoder(w).Encode(map[string]interface{}{"suggestions": []models.Suggestion{}})
		return
	}

	raw, err := s.fetcher.Suggest(r.Context(), query)
	var suggestions []models.Suggestion
	if err == nil {
		suggestions, err = parse.Suggestions(raw, query)
	}
	if err != nil {
		var noResults *apperrors.NoResultsError
		if errors.As(err, &noResults) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"suggestions": []models.Suggestion{},
				"message":     err.Error(),
			})
			return
		}
		s.log.Error("autocomplete lookup failed", err, map[string]interface{}{"query": query})
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": err.Error()})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{"suggestions": suggestions})
}

// HandleObserve runs the full pipeline for one submission: resolve the
// location, fetch astronomy data, parse, render charts. Each data source
// fails independently; a failed section shows an inline error while the
// successful sections still render.
func (s *Server) HandleObserve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	sess := s.newSession()
	sess.Query = strings.TrimSpace(r.PostFormValue("query"))
	sess.PlaceID = strings.TrimSpace(r.PostFormValue("place_id"))
	sess.Date = strings.TrimSpace(r.PostFormValue("date"))
	if c := r.PostFormValue("constellation"); constellationByID(c) != nil {
		sess.Constellation = c
	}

	date, err := s.observationDate(sess.Date)
	if err != nil {
		sess.fail("location", err)
		s.render(w, sess)
		return
	}
	sess.Date = date.Format("2006-01-02")

	sess.State = StateAwaitingLocation
	place, err := s.resolvePlace(ctx, sess)
	if err != nil {
		// Back to idle-with-error; the location field keeps its value
		s.log.Error("location resolution failed", err, map[string]interface{}{"query": sess.Query})
		sess.fail("location", err)
		sess.State = StateIdle
		s.render(w, sess)
		return
	}
	sess.Place = place
	s.log.Info("location resolved", map[string]interface{}{
		"query": sess.Query, "lat": place.Latitude, "lng": place.Longitude,
	})

	req, err := buildObservationRequest(place, date, sess.Constellation)
	if err != nil {
		sess.fail("location", err)
		sess.State = StateIdle
		s.render(w, sess)
		return
	}

	sess.State = StateAwaitingAstronomyData
	s.fetchStarChart(ctx, sess, req)
	s.fetchPositions(ctx, sess, req)
	s.fetchMoonPhase(ctx, sess, req)
	s.fetchSkyNews(ctx, sess)

	if entry := constellationByID(sess.Constellation); entry != nil {
		sess.ConstellationInfo = s.renderMarkdown(entry.Markdown)
	}

	if sess.StarChart != nil || len(sess.Positions) > 0 {
		sess.State = StateRendered
	} else {
		sess.State = StateIdle
	}
	s.render(w, sess)
}

// observationDate parses the date widget value, defaulting to today
func (s *Server) observationDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}

// resolvePlace turns the form input into a resolved Place: place details
// when a suggestion was chosen, geocoding fallback for free text.
func (s *Server) resolvePlace(ctx context.Context, sess *Session) (*models.Place, error) {
	if sess.PlaceID != "" {
		raw, err := s.fetcher.PlaceDetails(ctx, sess.PlaceID)
		if err != nil {
			return nil, err
		}
		lat, lng, err := parse.PlaceCoordinates(raw)
		if err != nil {
			return nil, err
		}
		return &models.Place{
			Query:       sess.Query,
			Description: sess.Query, // the input field holds the chosen suggestion text
			PlaceID:     sess.PlaceID,
			Latitude:    lat,
			Longitude:   lng,
			Resolved:    true,
		}, nil
	}

	if sess.Query == "" {
		return nil, fmt.Errorf("enter a location to observe from")
	}

	raw, err := s.fetcher.Geocode(ctx, sess.Query)
	if err != nil {
		return nil, err
	}
	lat, lng, err := parse.GeocodeCoordinates(raw, sess.Query)
	if err != nil {
		return nil, err
	}
	return &models.Place{
		Query:     sess.Query,
		Latitude:  lat,
		Longitude: lng,
		Resolved:  true,
	}, nil
}

// buildObservationRequest enforces the invariant that a Place must be
// resolved before any astronomy request is constructed.
func buildObservationRequest(place *models.Place, date time.Time, constellation string) (models.ObservationRequest, error) {
	if place == nil || !place.Resolved {
		return models.ObservationRequest{}, fmt.Errorf("location must be resolved before requesting astronomy data")
	}
	return models.ObservationRequest{
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		Date:          date,
		Constellation: constellation,
		Style:         "inverted",
	}, nil
}

func (s *Server) fetchStarChart(ctx context.Context, sess *Session, req models.ObservationRequest) {
	raw, err := s.fetcher.StarChart(ctx, req)
	if err != nil {
		s.log.Error("star chart fetch failed", err)
		sess.fail("starchart", err)
		return
	}
	result, err := parse.StarChart(raw, req.Constellation, time.Now().UTC())
	if err != nil {
		s.log.Error("star chart parse failed", err)
		sess.fail("starchart", err)
		return
	}
	sess.StarChart = result
}

func (s *Server) fetchPositions(ctx context.Context, sess *Session, req models.ObservationRequest) {
	raw, err := s.fetcher.BodyPositions(ctx, req)
	if err != nil {
		s.log.Error("body positions fetch failed", err)
		sess.fail("positions", err)
		return
	}
	positions, err := parse.BodyPositions(raw)
	if err != nil {
		s.log.Error("body positions parse failed", err)
		sess.fail("positions", err)
		return
	}
	sess.Positions = positions

	cycleDir := filepath.Join(s.cfg.ChartsDir, time.Now().UTC().Format("2006-01-02_15-04-05.000000"))
	if err := os.MkdirAll(cycleDir, 0755); err != nil {
		s.log.Error("failed to create chart directory", err)
		sess.fail("positions", fmt.Errorf("failed to prepare chart output: %w", err))
		return
	}

	cg := s.chartGenerator(cycleDir)
	pngPath, err := cg.GeneratePolarPNG(positions)
	if err != nil {
		s.log.Error("polar plot rendering failed", err)
		sess.fail("positions", err)
		return
	}
	sess.PolarPNGURL = "/charts/" + filepath.ToSlash(strings.TrimPrefix(pngPath, filepath.Clean(s.cfg.ChartsDir)+string(os.PathSeparator)))

	if snippet, err := cg.GeneratePolarSnippet(positions); err == nil {
		sess.PolarSnippet = template.HTML(snippet.HTML)
	} else {
		s.log.Error("polar snippet generation failed", err)
	}
	if distanceHTML, err := cg.GenerateDistanceChart(positions); err == nil {
		sess.DistanceChart = template.HTML(distanceHTML)
	} else {
		s.log.Error("distance chart generation failed", err)
	}
}

func (s *Server) fetchMoonPhase(ctx context.Context, sess *Session, req models.ObservationRequest) {
	raw, err := s.fetcher.MoonPhase(ctx, req)
	if err != nil {
		s.log.Error("moon phase fetch failed", err)
		sess.fail("moonphase", err)
		return
	}
	result, err := parse.MoonPhase(raw, time.Now().UTC())
	if err != nil {
		s.log.Error("moon phase parse failed", err)
		sess.fail("moonphase", err)
		return
	}
	sess.MoonPhase = result
}

func (s *Server) fetchSkyNews(ctx context.Context, sess *Session) {
	events, err := s.fetcher.SkyNews(ctx, s.cfg.SkyNewsFeedURL)
	if err != nil {
		s.log.Error("sky news fetch failed", err)
		sess.fail("news", err)
		return
	}
	sess.News = events
}

// HandleChartFile serves rendered chart PNGs for the current render cycle
func (s *Server) HandleChartFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/charts/")
	if filePath == "" || strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	localPath := filepath.Join(s.cfg.ChartsDir, filepath.FromSlash(filePath))
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", GetContentType(localPath))
	http.ServeFile(w, r, localPath)
}

// HandleHealth provides a health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
