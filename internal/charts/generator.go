package charts

import (
	"stargazer/internal/models"
)

// ChartGenerator handles creation of chart artifacts for one render cycle
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a chart generator writing PNGs to outputDir
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{outputDir: outputDir}
}

// GeneratePolarPNG renders the static polar plot and returns its file path
func (cg *ChartGenerator) GeneratePolarPNG(positions []models.PlanetPosition) (string, error) {
	return cg.generatePolarPlot(positions)
}
