// Package downloader is a thin facade over a MoviePilot-compatible
// subscription/download service, scoped to the two operations the
// reconciliation engine's Auto-Subscribe Gate dispatches.
package downloader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	curatordhttp "github.com/curatord/curatord/pkg/http"
	"github.com/curatord/curatord/pkg/logger"
	"go.uber.org/zap"
)

// IDownloader is the facade the Auto-Subscribe Gate dispatches to.
type IDownloader interface {
	SubscribeMovie(ctx context.Context, title, tmdbID string) (bool, error)
	SubscribeSeries(ctx context.Context, itemName, tmdbID string, seasonNumber *int) (bool, error)
}

type Client struct {
	httpClient curatordhttp.HTTPClient
	baseURL    string
	apiKey     string
}

func New(scheme, host, apiKey string, httpClient curatordhttp.HTTPClient) *Client {
	if httpClient == nil {
		httpClient = curatordhttp.NewRateLimitedHTTPClient()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    fmt.Sprintf("%s://%s/api/v1", scheme, host),
		apiKey:     apiKey,
	}
}

func (c *Client) post(ctx context.Context, path string, body any) (bool, error) {
	log := logger.FromCtx(ctx)

	b, err := json.Marshal(body)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("downloader request failed", zap.String("path", path), zap.Error(err))
		return false, fmt.Errorf("downloader request failed: %w", err)
	}
	defer res.Body.Close()

	return res.StatusCode >= 200 && res.StatusCode < 300, nil
}

// SubscribeMovie requests a subscription for a missing movie. Returns
// whether the downloader accepted the request.
func (c *Client) SubscribeMovie(ctx context.Context, title, tmdbID string) (bool, error) {
	return c.post(ctx, "/subscribe/movie", map[string]string{
		"title":   title,
		"tmdb_id": tmdbID,
	})
}

// SubscribeSeries requests a subscription for a missing series, or a
// single season of it when seasonNumber is non-nil.
func (c *Client) SubscribeSeries(ctx context.Context, itemName, tmdbID string, seasonNumber *int) (bool, error) {
	body := map[string]any{
		"item_name": itemName,
		"tmdb_id":   tmdbID,
	}
	if seasonNumber != nil {
		body["season_number"] = *seasonNumber
	}
	return c.post(ctx, "/subscribe/series", body)
}
