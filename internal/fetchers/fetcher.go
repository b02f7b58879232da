// Package fetchers holds the thin HTTP clients for the external services:
// Google Places/Geocoding, AstronomyAPI, and the sky news feed. Clients
// return raw payloads; conversion to typed records lives in internal/parse.
package fetchers

import (
	"context"
	"errors"
	"net"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"stargazer/internal/apperrors"
	"stargazer/internal/config"
	"stargazer/internal/logger"
)

// Client bundles the external API clients behind one facade
type Client struct {
	cfg *config.Config
	log *logger.Logger

	// Separate resty client for studio endpoints: chart generation on the
	// provider side routinely takes longer than ordinary API calls.
	http      *resty.Client
	chartHTTP *resty.Client

	feedParser *gofeed.Parser
}

// New creates a fetcher client from service configuration. No retries are
// configured anywhere: each UI interaction triggers exactly one fresh call
// per data source and the user decides whether to try again.
func New(cfg *config.Config) *Client {
	httpClient := resty.New()
	httpClient.SetTimeout(cfg.HTTPTimeout)

	chartClient := resty.New()
	chartClient.SetTimeout(cfg.ChartTimeout)
	chartClient.SetBasicAuth(cfg.AppID, cfg.AppSecret)
	chartClient.SetHeader("Content-Type", "application/json")

	return &Client{
		cfg:        cfg,
		log:        logger.GetGlobalLogger().WithComponent("fetchers"),
		http:       httpClient,
		chartHTTP:  chartClient,
		feedParser: gofeed.NewParser(),
	}
}

// transportError maps a transport-level failure onto the error taxonomy
func transportError(service string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &apperrors.TimeoutError{Service: service, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &apperrors.TimeoutError{Service: service, Err: err}
	}
	return &apperrors.APIError{Service: service, Message: err.Error()}
}
