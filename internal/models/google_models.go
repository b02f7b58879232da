package models

// GoogleAutocompleteResponse represents the Places Autocomplete JSON response
type GoogleAutocompleteResponse struct {
	Status      string             `json:"status"`
	Predictions []GooglePrediction `json:"predictions"`
}

// GooglePrediction is one autocomplete candidate
type GooglePrediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// GooglePlaceDetailsResponse represents the Place Details JSON response
// (requested with fields=geometry)
type GooglePlaceDetailsResponse struct {
	Status string               `json:"status"`
	Result *GooglePlaceGeometry `json:"result"`
}

// GooglePlaceGeometry wraps the geometry block of a place result
type GooglePlaceGeometry struct {
	Geometry *GoogleGeometry `json:"geometry"`
}

// GoogleGeocodeResponse represents the Geocoding API JSON response
type GoogleGeocodeResponse struct {
	Status  string                `json:"status"`
	Results []GooglePlaceGeometry `json:"results"`
}

// GoogleGeometry holds a location block
type GoogleGeometry struct {
	Location *GoogleLatLng `json:"location"`
}

// GoogleLatLng is a coordinate pair. Pointers distinguish a genuinely
// missing field from a zero coordinate.
type GoogleLatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}
