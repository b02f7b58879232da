package models

import "time"

// Place is a resolved geographic location derived from free-text input.
// Immutable once resolved; a Place with coordinates present is a
// precondition for building an ObservationRequest.
type Place struct {
	Query       string  `json:"query"`
	Description string  `json:"description,omitempty"`
	PlaceID     string  `json:"place_id,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Resolved    bool    `json:"resolved"`
}

// Suggestion is a single autocomplete candidate
type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// ObservationRequest is the parameter set sent to the astronomy API for a
// single chart/position query. Constructed per UI submission, sent as-is.
type ObservationRequest struct {
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Elevation     float64   `json:"elevation"`
	Date          time.Time `json:"date"`
	Constellation string    `json:"constellation"` // 3-letter IAU id, e.g. "ori"
	Style         string    `json:"style"`         // star chart style, e.g. "inverted"
}

// StarChartResult holds the generated star chart for the current render cycle
type StarChartResult struct {
	ImageURL      string    `json:"image_url"`
	Constellation string    `json:"constellation"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// MoonPhaseResult holds the generated moon phase image for the current render cycle
type MoonPhaseResult struct {
	ImageURL    string    `json:"image_url"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PlanetPosition is one celestial body's position for one request
type PlanetPosition struct {
	Body                string    `json:"body"`
	RightAscensionHours float64   `json:"right_ascension_hours"` // 0..24
	DeclinationDegrees  float64   `json:"declination_degrees"`   // -90..90
	DistanceAU          float64   `json:"distance_au"`
	Constellation       string    `json:"constellation,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// SkyEvent is one item from the astronomy news feed
type SkyEvent struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}
