package fetchers

import (
	"context"
	"strconv"

	"stargazer/internal/apperrors"
	"stargazer/internal/models"
)

// starChartPayload mirrors the AstronomyAPI studio star-chart request body
type starChartPayload struct {
	Style    string           `json:"style"`
	Observer observerPayload  `json:"observer"`
	View     starChartView    `json:"view"`
}

type observerPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"`
}

type starChartView struct {
	Type       string              `json:"type"`
	Parameters starChartViewParams `json:"parameters"`
}

type starChartViewParams struct {
	Constellation string `json:"constellation"`
}

// moonPhasePayload mirrors the studio moon-phase request body
type moonPhasePayload struct {
	Format   string          `json:"format"`
	Style    moonPhaseStyle  `json:"style"`
	Observer observerPayload `json:"observer"`
	View     moonPhaseView   `json:"view"`
}

type moonPhaseStyle struct {
	MoonStyle       string `json:"moonStyle"`
	BackgroundStyle string `json:"backgroundStyle"`
	BackgroundColor string `json:"backgroundColor"`
	HeadingColor    string `json:"headingColor"`
	TextColor       string `json:"textColor"`
}

type moonPhaseView struct {
	Type        string `json:"type"`
	Orientation string `json:"orientation"`
}

// StarChart requests a constellation star chart image. The observer block
// carries the resolved Place coordinates as JSON numbers, so the values
// round-trip exactly as resolved.
func (c *Client) StarChart(ctx context.Context, req models.ObservationRequest) ([]byte, error) {
	payload := starChartPayload{
		Style: req.Style,
		Observer: observerPayload{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Date:      req.Date.Format("2006-01-02"),
		},
		View: starChartView{
			Type:       "constellation",
			Parameters: starChartViewParams{Constellation: req.Constellation},
		},
	}

	c.log.Debugf("Requesting star chart for constellation %s", req.Constellation)
	resp, err := c.chartHTTP.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.cfg.StarChartURL)

	if err != nil {
		return nil, transportError("AstronomyAPI", err)
	}
	if err := astronomyStatusError(resp.StatusCode(), resp.Status()); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// MoonPhase requests a moon phase image for the observer and date
func (c *Client) MoonPhase(ctx context.Context, req models.ObservationRequest) ([]byte, error) {
	payload := moonPhasePayload{
		Format: "png",
		Style: moonPhaseStyle{
			MoonStyle:       "default",
			BackgroundStyle: "stars",
			BackgroundColor: "black",
			HeadingColor:    "white",
			TextColor:       "white",
		},
		Observer: observerPayload{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Date:      req.Date.Format("2006-01-02"),
		},
		View: moonPhaseView{Type: "portrait-simple", Orientation: "south-up"},
	}

	resp, err := c.chartHTTP.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.cfg.MoonPhaseURL)

	if err != nil {
		return nil, transportError("AstronomyAPI", err)
	}
	if err := astronomyStatusError(resp.StatusCode(), resp.Status()); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// BodyPositions requests equatorial positions for all bodies at the observer
// location and date. Coordinates are formatted with the shortest exact
// float64 representation so they round-trip the resolved Place values.
func (c *Client) BodyPositions(ctx context.Context, req models.ObservationRequest) ([]byte, error) {
	day := req.Date.Format("2006-01-02")

	resp, err := c.chartHTTP.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(req.Latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(req.Longitude, 'f', -1, 64),
			"elevation": strconv.FormatFloat(req.Elevation, 'f', -1, 64),
			"from_date": day,
			"to_date":   day,
			"time":      req.Date.Format("15:04:05"),
		}).
		Get(c.cfg.PositionsURL)

	if err != nil {
		return nil, transportError("AstronomyAPI", err)
	}
	if err := astronomyStatusError(resp.StatusCode(), resp.Status()); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func astronomyStatusError(code int, status string) error {
	switch {
	case code == 200:
		return nil
	case code == 401 || code == 403:
		return &apperrors.AuthError{Service: "AstronomyAPI", StatusCode: code}
	default:
		return &apperrors.APIError{Service: "AstronomyAPI", StatusCode: code, Message: status}
	}
}
