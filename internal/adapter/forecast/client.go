// Package forecast fetches hourly weather forecasts from the provider's
// HTTP API.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/couchcryptid/weather-alarm-service/internal/config"
	"github.com/couchcryptid/weather-alarm-service/internal/domain"
)

// Client implements engine.ForecastSource against the forecast provider API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a forecast API client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.ForecastBaseURL,
		token:   cfg.ForecastToken,
		httpClient: &http.Client{
			Timeout: cfg.ForecastTimeout,
		},
		logger: logger,
	}
}

// FetchHourly retrieves the hourly forecast window for a device.
func (c *Client) FetchHourly(ctx context.Context, deviceID string) ([]domain.ForecastSample, error) {
	u := fmt.Sprintf("%s/api/weather/%s/forecast", c.baseURL, url.PathEscape(deviceID))
	params := url.Values{"type": {"hourly"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch hourly forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("forecast API error: status %d: %s", resp.StatusCode, body)
	}

	var fr response
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return c.mapSamples(fr.Forecast), nil
}

// Forecast API response shape. Each entry carries a datetime plus a flat set
// of numeric weather fields; the set of fields varies by provider and device.
type response struct {
	Forecast []map[string]any `json:"forecast"`
}

// mapSamples converts provider entries into domain samples, keeping every
// numeric field. Entries without a parseable datetime are dropped; the
// samples are returned in chronological order.
func (c *Client) mapSamples(entries []map[string]any) []domain.ForecastSample {
	samples := make([]domain.ForecastSample, 0, len(entries))
	for _, entry := range entries {
		dt, ok := entry["datetime"].(string)
		if !ok {
			c.logger.Debug("forecast entry has no datetime, dropping")
			continue
		}
		ts, err := time.Parse(time.RFC3339, dt)
		if err != nil {
			c.logger.Debug("forecast entry has unparseable datetime, dropping", "datetime", dt)
			continue
		}

		fields := make(map[string]float64, len(entry))
		for k, v := range entry {
			if f, ok := v.(float64); ok {
				fields[k] = f
			}
		}
		samples = append(samples, domain.ForecastSample{Timestamp: ts.UTC(), Fields: fields})
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})
	return samples
}
