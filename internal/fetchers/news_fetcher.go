package fetchers

import (
	"context"

	"stargazer/internal/apperrors"
	"stargazer/internal/models"
)

const maxSkyEvents = 5

// SkyNews fetches the astronomy news RSS feed and returns the most recent
// items. A feed failure is independent of the astronomy pipeline; callers
// display it inline and keep rendering the rest of the page.
func (c *Client) SkyNews(ctx context.Context, feedURL string) ([]models.SkyEvent, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(feedURL)

	if err != nil {
		return nil, transportError("sky news feed", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &apperrors.APIError{Service: "sky news feed", StatusCode: resp.StatusCode(), Message: resp.Status()}
	}

	feed, err := c.feedParser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, &apperrors.ParseError{Source: "sky news feed", Err: err}
	}

	events := make([]models.SkyEvent, 0, maxSkyEvents)
	for _, item := range feed.Items {
		if len(events) == maxSkyEvents {
			break
		}
		event := models.SkyEvent{Title: item.Title, Link: item.Link}
		if item.PublishedParsed != nil {
			event.Published = *item.PublishedParsed
		}
		events = append(events, event)
	}
	c.log.Debugf("Fetched %d sky news items", len(events))
	return events, nil
}
