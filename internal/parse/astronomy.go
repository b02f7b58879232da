package parse

import (
	"encoding/json"
	"strconv"
	"time"

	"stargazer/internal/apperrors"
	"stargazer/internal/models"
)

// StarChart extracts the generated chart image URL from a studio star-chart payload
func StarChart(raw []byte, constellation string, generatedAt time.Time) (*models.StarChartResult, error) {
	data, err := studioImageURL(raw, "star chart")
	if err != nil {
		return nil, err
	}
	return &models.StarChartResult{
		ImageURL:      data,
		Constellation: constellation,
		GeneratedAt:   generatedAt,
	}, nil
}

// MoonPhase extracts the generated image URL from a studio moon-phase payload
func MoonPhase(raw []byte, generatedAt time.Time) (*models.MoonPhaseResult, error) {
	data, err := studioImageURL(raw, "moon phase")
	if err != nil {
		return nil, err
	}
	return &models.MoonPhaseResult{ImageURL: data, GeneratedAt: generatedAt}, nil
}

func studioImageURL(raw []byte, source string) (string, error) {
	var resp models.StudioResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &apperrors.ParseError{Source: source, Err: err}
	}
	if resp.Data == nil {
		return "", &apperrors.ParseError{Source: source, Field: "data"}
	}
	if resp.Data.ImageURL == "" {
		return "", &apperrors.ParseError{Source: source, Field: "data.imageUrl"}
	}
	return resp.Data.ImageURL, nil
}

// BodyPositions converts a bodies/positions payload into an ordered sequence
// of PlanetPosition records, one per body, preserving the API's row order.
// Any row with a missing required field fails the whole conversion; a record
// is never partially populated.
func BodyPositions(raw []byte) ([]models.PlanetPosition, error) {
	var resp models.PositionsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &apperrors.ParseError{Source: "body positions", Err: err}
	}
	if resp.Data == nil || resp.Data.Table == nil {
		return nil, &apperrors.ParseError{Source: "body positions", Field: "data.table"}
	}

	positions := make([]models.PlanetPosition, 0, len(resp.Data.Table.Rows))
	for _, row := range resp.Data.Table.Rows {
		if row.Entry == nil || row.Entry.Name == "" {
			return nil, &apperrors.ParseError{Source: "body positions", Field: "rows.entry.name"}
		}
		// The observer's own planet carries no meaningful geocentric position
		if row.Entry.ID == "earth" {
			continue
		}
		if len(row.Cells) == 0 {
			return nil, &apperrors.ParseError{Source: "body positions", Field: "rows.cells"}
		}

		cell := row.Cells[0]
		pos, err := cellPosition(row.Entry.Name, cell)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

func cellPosition(body string, cell models.PositionCell) (models.PlanetPosition, error) {
	var zero models.PlanetPosition

	if cell.Position == nil || cell.Position.Equatorial == nil {
		return zero, &apperrors.ParseError{Source: "body positions", Field: "cells.position.equatorial"}
	}
	eq := cell.Position.Equatorial

	ra, err := coordFloat(eq.RightAscension, func(c *models.CoordValue) string { return c.Hours })
	if err != nil {
		return zero, &apperrors.ParseError{Source: "body positions", Field: "equatorial.rightAscension.hours"}
	}
	dec, err := coordFloat(eq.Declination, func(c *models.CoordValue) string { return c.Degrees })
	if err != nil {
		return zero, &apperrors.ParseError{Source: "body positions", Field: "equatorial.declination.degrees"}
	}

	if cell.Distance == nil || cell.Distance.FromEarth == nil || cell.Distance.FromEarth.AU == "" {
		return zero, &apperrors.ParseError{Source: "body positions", Field: "distance.fromEarth.au"}
	}
	au, err := strconv.ParseFloat(cell.Distance.FromEarth.AU, 64)
	if err != nil {
		return zero, &apperrors.ParseError{Source: "body positions", Field: "distance.fromEarth.au"}
	}

	ts, err := time.Parse(time.RFC3339, cell.Date)
	if err != nil {
		return zero, &apperrors.ParseError{Source: "body positions", Field: "cells.date"}
	}

	pos := models.PlanetPosition{
		Body:                body,
		RightAscensionHours: ra,
		DeclinationDegrees:  dec,
		DistanceAU:          au,
		Timestamp:           ts,
	}
	if cell.Position.Constellation != nil {
		pos.Constellation = cell.Position.Constellation.Name
	}
	return pos, nil
}

func coordFloat(c *models.CoordValue, pick func(*models.CoordValue) string) (float64, error) {
	if c == nil {
		return 0, &apperrors.ParseError{Source: "body positions"}
	}
	s := pick(c)
	if s == "" {
		return 0, &apperrors.ParseError{Source: "body positions"}
	}
	return strconv.ParseFloat(s, 64)
}
