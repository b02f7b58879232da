package charts

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"stargazer/internal/models"
)

// GenerateDistanceChart builds a bar chart of distance from Earth per body,
// rendered as a self-contained HTML fragment.
func (cg *ChartGenerator) GenerateDistanceChart(positions []models.PlanetPosition) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Distance from Earth",
			Subtitle: "Astronomical units per body",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Body",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "AU",
		}),
	)

	xAxis := make([]string, 0, len(positions))
	barData := make([]opts.BarData, 0, len(positions))
	for _, pos := range positions {
		xAxis = append(xAxis, pos.Body)
		barData = append(barData, opts.BarData{Value: pos.DistanceAU})
	}

	bar.SetXAxis(xAxis).
		AddSeries("Distance (AU)", barData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
