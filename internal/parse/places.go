// Package parse converts raw API payloads into typed records. All functions
// are pure: they fail with a typed error on unexpected shapes and never
// substitute defaults for missing fields.
package parse

import (
	"encoding/json"

	"stargazer/internal/apperrors"
	"stargazer/internal/models"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Suggestions converts a Places Autocomplete payload into an ordered
// candidate list. An empty list is a NoResultsError, not an empty success.
func Suggestions(raw []byte, query string) ([]models.Suggestion, error) {
	var resp models.GoogleAutocompleteResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &apperrors.ParseError{Source: "autocomplete", Err: err}
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return nil, &apperrors.NoResultsError{Query: query}
	default:
		return nil, &apperrors.APIError{Service: "Google Places", Message: resp.Status}
	}

	if len(resp.Predictions) == 0 {
		return nil, &apperrors.NoResultsError{Query: query}
	}

	suggestions := make([]models.Suggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		if p.Description == "" {
			return nil, &apperrors.ParseError{Source: "autocomplete", Field: "predictions.description"}
		}
		if p.PlaceID == "" {
			return nil, &apperrors.ParseError{Source: "autocomplete", Field: "predictions.place_id"}
		}
		suggestions = append(suggestions, models.Suggestion{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return suggestions, nil
}

// PlaceCoordinates extracts latitude and longitude from a Place Details
// payload requested with fields=geometry.
func PlaceCoordinates(raw []byte) (float64, float64, error) {
	var resp models.GooglePlaceDetailsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, 0, &apperrors.ParseError{Source: "place details", Err: err}
	}

	if resp.Status != statusOK {
		return 0, 0, &apperrors.APIError{Service: "Google Places", Message: resp.Status}
	}
	if resp.Result == nil {
		return 0, 0, &apperrors.ParseError{Source: "place details", Field: "result"}
	}
	return geometryCoordinates(resp.Result.Geometry, "place details")
}

// GeocodeCoordinates extracts latitude and longitude from a Geocoding
// payload, using the first result.
func GeocodeCoordinates(raw []byte, query string) (float64, float64, error) {
	var resp models.GoogleGeocodeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, 0, &apperrors.ParseError{Source: "geocode", Err: err}
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return 0, 0, &apperrors.NoResultsError{Query: query}
	default:
		return 0, 0, &apperrors.APIError{Service: "Google Geocoding", Message: resp.Status}
	}

	if len(resp.Results) == 0 {
		return 0, 0, &apperrors.NoResultsError{Query: query}
	}
	return geometryCoordinates(resp.Results[0].Geometry, "geocode")
}

func geometryCoordinates(geometry *models.GoogleGeometry, source string) (float64, float64, error) {
	if geometry == nil || geometry.Location == nil {
		return 0, 0, &apperrors.ParseError{Source: source, Field: "geometry.location"}
	}
	if geometry.Location.Lat == nil {
		return 0, 0, &apperrors.ParseError{Source: source, Field: "geometry.location.lat"}
	}
	if geometry.Location.Lng == nil {
		return 0, 0, &apperrors.ParseError{Source: source, Field: "geometry.location.lng"}
	}
	return *geometry.Location.Lat, *geometry.Location.Lng, nil
}
