package fetchers

import (
	"context"

	"stargazer/internal/apperrors"
)

// Suggest fetches autocomplete candidates for partial text input from the
// Google Places Autocomplete API and returns the raw JSON payload.
func (c *Client) Suggest(ctx context.Context, input string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"input": input,
			"types": "geocode",
			"key":   c.cfg.GoogleAPIKey,
		}).
		Get(c.cfg.AutocompleteURL)

	if err != nil {
		return nil, transportError("Google Places", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &apperrors.APIError{Service: "Google Places", StatusCode: resp.StatusCode(), Message: resp.Status()}
	}
	return resp.Body(), nil
}

// PlaceDetails fetches the geometry of a place by its place id
func (c *Client) PlaceDetails(ctx context.Context, placeID string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id": placeID,
			"fields":   "geometry",
			"key":      c.cfg.GoogleAPIKey,
		}).
		Get(c.cfg.PlaceDetailsURL)

	if err != nil {
		return nil, transportError("Google Places", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &apperrors.APIError{Service: "Google Places", StatusCode: resp.StatusCode(), Message: resp.Status()}
	}
	return resp.Body(), nil
}

// Geocode resolves a free-text address via the Geocoding API. Used as the
// fallback when the user submits text without picking a suggestion.
func (c *Client) Geocode(ctx context.Context, address string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"address": address,
			"key":     c.cfg.GoogleAPIKey,
		}).
		Get(c.cfg.GeocodeURL)

	if err != nil {
		return nil, transportError("Google Geocoding", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &apperrors.APIError{Service: "Google Geocoding", StatusCode: resp.StatusCode(), Message: resp.Status()}
	}
	return resp.Body(), nil
}
