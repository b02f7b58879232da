package server

import (
	"html/template"

	"stargazer/internal/models"
)

// InteractionState tracks the UI pipeline for one interaction
type InteractionState string

const (
	StateIdle                  InteractionState = "idle"
	StateAwaitingLocation      InteractionState = "awaiting_location"
	StateAwaitingAstronomyData InteractionState = "awaiting_astronomy_data"
	StateRendered              InteractionState = "rendered"
)

// Session is the explicit session-scoped view state for a single UI
// interaction. It is built per request, passed to the template, and
// discarded afterwards; nothing persists across interactions.
type Session struct {
	State InteractionState

	// Form values, echoed back so the widgets keep their state
	Query         string
	PlaceID       string
	Date          string
	Constellation string

	Place *models.Place

	// Result sections; each is independently failable
	StarChart *models.StarChartResult
	MoonPhase *models.MoonPhaseResult
	Positions []models.PlanetPosition
	News      []models.SkyEvent

	PolarPNGURL       string
	PolarSnippet      template.HTML
	DistanceChart     template.HTML
	ConstellationInfo template.HTML

	// Inline error message per section; a failed section leaves the other
	// sections' prior results untouched
	Errors map[string]string

	Constellations []Constellation
	Version        string
}

// newSession builds an idle session with form defaults
func (s *Server) newSession() *Session {
	return &Session{
		State:          StateIdle,
		Constellation:  defaultConstellationID,
		Errors:         make(map[string]string),
		Constellations: ConstellationCatalog,
		Version:        s.version,
	}
}

// fail records an inline error for one section and reports it
func (sess *Session) fail(section string, err error) {
	sess.Errors[section] = err.Error()
}
