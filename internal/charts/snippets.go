package charts

// ChartSnippet is an embeddable ECharts fragment. Div holds a single root
// <div id="...">, Script the <script> block that initializes the chart in
// that div, and HTML the complete combined snippet for template substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}
