package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"

	"stargazer/internal/apperrors"
)

// Config holds all configuration for the constellation viewer service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8870"`

	// AstronomyAPI credentials (Basic auth, app id + secret)
	AppID     string `env:"APP_ID,required"`
	AppSecret string `env:"APP_SECRET,required"`

	// Google Maps Platform API key (Places + Geocoding)
	GoogleAPIKey string `env:"GOOGLE_API_KEY,required"`

	// External endpoint URLs (overridable for testing)
	AutocompleteURL string `env:"GOOGLE_AUTOCOMPLETE_URL,default=https://maps.googleapis.com/maps/api/place/autocomplete/json"`
	PlaceDetailsURL string `env:"GOOGLE_PLACE_DETAILS_URL,default=https://maps.googleapis.com/maps/api/place/details/json"`
	GeocodeURL      string `env:"GOOGLE_GEOCODE_URL,default=https://maps.googleapis.com/maps/api/geocode/json"`
	StarChartURL    string `env:"ASTRONOMY_STAR_CHART_URL,default=https://api.astronomyapi.com/api/v2/studio/star-chart"`
	MoonPhaseURL    string `env:"ASTRONOMY_MOON_PHASE_URL,default=https://api.astronomyapi.com/api/v2/studio/moon-phase"`
	PositionsURL    string `env:"ASTRONOMY_POSITIONS_URL,default=https://api.astronomyapi.com/api/v2/bodies/positions"`
	SkyNewsFeedURL  string `env:"SKY_NEWS_FEED_URL,default=https://www.nasa.gov/rss/dyn/breaking_news.rss"`

	// HTTP client timeouts. Star chart generation is slow on the provider
	// side, so it gets its own longer budget.
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT,default=30s"`
	ChartTimeout time.Duration `env:"CHART_TIMEOUT,default=120s"`

	// Directory for rendered chart images (one subdirectory per render cycle)
	ChartsDir string `env:"CHARTS_DIR,default=./charts"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables. Missing required
// credentials surface as a ConfigError so the caller can refuse to start.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, &apperrors.ConfigError{Err: err}
	}
	return &cfg, nil
}
