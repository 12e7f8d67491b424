package news

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"silver-advisor/internal/api"
	"silver-advisor/internal/store"
	"silver-advisor/internal/types"
)

// ErrFeedStatus is returned when a JSON feed gateway reports a failure
var ErrFeedStatus = errors.New("feed status not ok")

type rss2jsonResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Items   []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		PubDate string `json:"pubDate"`
	} `json:"items"`
}

func rss2jsonURL(endpoint string, feed store.FeedConfig) string {
	return endpoint + "?rss_url=" + url.QueryEscape(feed.URL)
}

// fetchRSS2JSON reads a feed through an rss2json style gateway
func fetchRSS2JSON(ctx context.Context, client *api.Client, endpoint string, feed store.FeedConfig) ([]types.Headline, error) {
	resp, err := client.GET(ctx, rss2jsonURL(endpoint, feed))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feed.Name, err)
	}

	var body rss2jsonResponse
	if err := resp.ParseJSON(&body); err != nil {
		return nil, fmt.Errorf("decode %s: %w", feed.Name, err)
	}
	if !strings.EqualFold(body.Status, "ok") {
		return nil, fmt.Errorf("%w: %s: %s", ErrFeedStatus, feed.Name, body.Message)
	}

	headlines := make([]types.Headline, 0, len(body.Items))
	for _, it := range body.Items {
		headlines = append(headlines, types.Headline{
			Title:     strings.TrimSpace(it.Title),
			Link:      strings.TrimSpace(it.Link),
			Published: it.PubDate,
			Source:    feed.Name,
		})
	}
	return headlines, nil
}
