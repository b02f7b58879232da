// Package charts renders planetary position data as polar plots: a static
// PNG (go-chart), an interactive ECharts snippet, and a distance bar chart
// (go-echarts). All renderers are deterministic for identical input.
package charts

import (
	"math"

	"stargazer/internal/models"
)

// PolarPoint is one body projected onto the polar plot. Angle encodes right
// ascension (15 degrees per hour), radius encodes distance from Earth with
// logarithmic compression so Mercury and Neptune fit on one disc.
type PolarPoint struct {
	Body         string
	AngleDegrees float64
	Radius       float64
	DistanceAU   float64
}

// Project converts an ordered sequence of planet positions into polar plot
// points. The output order and length match the input exactly; an empty
// input produces an empty (not nil) slice.
func Project(positions []models.PlanetPosition) []PolarPoint {
	points := make([]PolarPoint, 0, len(positions))
	for _, pos := range positions {
		points = append(points, PolarPoint{
			Body:         pos.Body,
			AngleDegrees: pos.RightAscensionHours * 15.0,
			Radius:       radialValue(pos.DistanceAU),
			DistanceAU:   pos.DistanceAU,
		})
	}
	return points
}

// radialValue compresses distance in AU onto the plot radius. log1p keeps
// near-Earth bodies distinguishable while the outer planets stay on-disc.
func radialValue(distanceAU float64) float64 {
	if distanceAU < 0 {
		distanceAU = 0
	}
	return math.Log1p(distanceAU)
}

// cartesian converts a polar point to plot coordinates. Zero degrees points
// east and angles grow counterclockwise, matching right ascension direction.
func cartesian(p PolarPoint) (float64, float64) {
	theta := p.AngleDegrees * math.Pi / 180.0
	return p.Radius * math.Cos(theta), p.Radius * math.Sin(theta)
}

// maxRadius returns the largest projected radius, with a floor so an empty
// or degenerate plot still has visible rings.
func maxRadius(points []PolarPoint) float64 {
	max := radialValue(1.0)
	for _, p := range points {
		if p.Radius > max {
			max = p.Radius
		}
	}
	return max
}
