package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"stargazer/internal/charts"
	"stargazer/internal/config"
	"stargazer/internal/fetchers"
	"stargazer/internal/logger"
)

//go:embed templates/index.html
var templateFS embed.FS

// Server is the UI controller: it wires the form widgets to the fetch,
// parse, and render pipeline and serves the results.
type Server struct {
	cfg     *config.Config
	fetcher *fetchers.Client
	log     *logger.Logger
	tmpl    *template.Template
	md      goldmark.Markdown
	version string
}

// NewServer creates a server instance from loaded configuration
func NewServer(cfg *config.Config) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	return &Server{
		cfg:     cfg,
		fetcher: fetchers.New(cfg),
		log:     logger.GetGlobalLogger().WithComponent("server"),
		tmpl:    tmpl,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
		version: config.Version,
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/suggest", s.HandleSuggest)
	mux.HandleFunc("/observe", s.HandleObserve)
	mux.HandleFunc("/charts/", s.HandleChartFile)
	mux.HandleFunc("/", s.HandleIndex)

	return mux
}

// render executes the page template for the given session state
func (s *Server) render(w http.ResponseWriter, sess *Session) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, sess); err != nil {
		s.log.Error("template execution failed", err)
	}
}

// renderMarkdown converts a markdown snippet to embeddable HTML
func (s *Server) renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		s.log.Error("markdown conversion failed", err)
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

// chartGenerator creates a per-render-cycle chart generator
func (s *Server) chartGenerator(cycleDir string) *charts.ChartGenerator {
	return charts.NewChartGenerator(cycleDir)
}
