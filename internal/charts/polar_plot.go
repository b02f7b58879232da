package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"stargazer/internal/models"
)

const ringSegments = 96

var bodyDotColors = []drawing.Color{
	{R: 214, G: 39, B: 40, A: 255},
	{R: 31, G: 119, B: 180, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

// generatePolarPlot renders the planetary positions as a polar scatter PNG:
// angle is right ascension, radius is log-compressed distance from Earth.
// An empty position sequence renders rings only, never an error.
func (cg *ChartGenerator) generatePolarPlot(positions []models.PlanetPosition) (string, error) {
	filename := filepath.Join(cg.outputDir, "planet_positions.png")

	points := Project(positions)
	maxR := maxRadius(points)
	pad := maxR * 1.2

	series := make([]chart.Series, 0, len(points)+6)

	// Reference rings at quarter fractions of the outermost radius
	for _, fraction := range []float64{0.25, 0.5, 0.75, 1.0} {
		series = append(series, ringSeries(maxR*fraction))
	}

	annotations := chart.AnnotationSeries{
		Style: chart.Style{
			FontSize:    10,
			FontColor:   drawing.Color{R: 52, G: 58, B: 64, A: 255},
			StrokeColor: drawing.ColorTransparent,
			FillColor:   drawing.ColorTransparent,
		},
	}

	for i, p := range points {
		x, y := cartesian(p)
		series = append(series, chart.ContinuousSeries{
			Name:    p.Body,
			XValues: []float64{x},
			YValues: []float64{y},
			Style: chart.Style{
				DotWidth: 6,
				DotColor: bodyDotColors[i%len(bodyDotColors)],
			},
		})
		annotations.Annotations = append(annotations.Annotations, chart.Value2{
			XValue: x,
			YValue: y,
			Label:  fmt.Sprintf("%s (%.2f AU)", p.Body, p.DistanceAU),
		})
	}
	if len(annotations.Annotations) > 0 {
		series = append(series, annotations)
	}

	graph := chart.Chart{
		Title: "Planetary Positions (RA vs distance)",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Width:  640,
		Height: 640,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: drawing.Color{R: 248, G: 249, B: 250, A: 255},
		},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: -pad, Max: pad},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: -pad, Max: pad},
		},
		Series: series,
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render polar plot: %w", err)
	}
	return filename, nil
}

// ringSeries builds a closed circle of the given radius
func ringSeries(radius float64) chart.ContinuousSeries {
	xs := make([]float64, ringSegments+1)
	ys := make([]float64, ringSegments+1)
	for i := 0; i <= ringSegments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(ringSegments)
		xs[i] = radius * math.Cos(theta)
		ys[i] = radius * math.Sin(theta)
	}
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: 1,
			StrokeColor: drawing.Color{R: 200, G: 205, B: 210, A: 255},
		},
	}
}
