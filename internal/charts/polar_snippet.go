package charts

import (
	"encoding/json"
	"fmt"

	"stargazer/internal/models"
)

// GeneratePolarSnippet builds an interactive ECharts polar scatter of the
// planetary positions. Data points are [radius, angleDegrees] pairs in the
// same order as the input sequence.
func (cg *ChartGenerator) GeneratePolarSnippet(positions []models.PlanetPosition) (ChartSnippet, error) {
	id := "chart-planet-polar"

	points := Project(positions)
	seriesData := make([]map[string]interface{}, 0, len(points))
	for _, p := range points {
		seriesData = append(seriesData, map[string]interface{}{
			"name":  p.Body,
			"value": []float64{p.Radius, p.AngleDegrees},
		})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item"},
		"polar":   map[string]interface{}{"radius": "75%"},
		"angleAxis": map[string]interface{}{
			"type":        "value",
			"min":         0,
			"max":         360,
			"startAngle":  0,
			"axisLabel":   map[string]interface{}{"formatter": "{value}°"},
			"splitNumber": 12,
		},
		"radiusAxis": map[string]interface{}{
			"axisLabel": map[string]interface{}{"show": false},
		},
		"series": []interface{}{map[string]interface{}{
			"coordinateSystem": "polar",
			"type":             "scatter",
			"symbolSize":       12,
			"data":             seriesData,
			"label": map[string]interface{}{
				"show":      true,
				"position":  "top",
				"formatter": "{b}",
			},
		}},
	}

	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, err
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:420px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	completeHTML := fmt.Sprintf(`<div class="chart-container">
	<h3>Planetary Positions (polar)</h3>
	%s
</div>
%s`, div, script)

	return ChartSnippet{ID: id, Title: "Planetary Positions (polar)", Div: div, Script: script, HTML: completeHTML}, nil
}
