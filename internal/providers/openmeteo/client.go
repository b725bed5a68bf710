package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agro-weather/internal/observability"
)

const (
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultArchiveURL  = "https://archive-api.open-meteo.com/v1/archive"

	// Non-2xx bodies are truncated to this length in error messages.
	maxErrorBodyLen = 512
)

// Params are the query parameters for a single Open-Meteo request. Empty
// fields are omitted from the query string. The timezone is always "auto" so
// the response carries the local timezone of the requested point.
type Params struct {
	Latitude  float64
	Longitude float64
	Current   []string
	Hourly    []string
	Daily     []string
	Models    []string

	ForecastDays int // 0 omits the parameter

	// Archive-only date range, YYYY-MM-DD.
	StartDate string
	EndDate   string
}

func (p Params) values() url.Values {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", p.Latitude))
	q.Set("longitude", fmt.Sprintf("%g", p.Longitude))
	q.Set("timezone", "auto")

	if len(p.Current) > 0 {
		q.Set("current", strings.Join(p.Current, ","))
	}
	if len(p.Hourly) > 0 {
		q.Set("hourly", strings.Join(p.Hourly, ","))
	}
	if len(p.Daily) > 0 {
		q.Set("daily", strings.Join(p.Daily, ","))
	}
	if len(p.Models) > 0 {
		q.Set("models", strings.Join(p.Models, ","))
	}
	if p.ForecastDays > 0 {
		q.Set("forecast_days", strconv.Itoa(p.ForecastDays))
	}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	return q
}

// Client calls the Open-Meteo forecast and archive endpoints. One GET per
// call, no retries; the context cancels the in-flight request.
type Client struct {
	httpClient  *http.Client
	forecastURL string
	archiveURL  string
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewClient creates an Open-Meteo client with the given endpoint URLs and a
// fixed request timeout. Empty URLs fall back to the public API endpoints.
func NewClient(forecastURL, archiveURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if forecastURL == "" {
		forecastURL = defaultForecastURL
	}
	if archiveURL == "" {
		archiveURL = defaultArchiveURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		forecastURL: forecastURL,
		archiveURL:  archiveURL,
		metrics:     metrics,
		logger:      logger.With("component", "openmeteo-client"),
	}
}

// Forecast fetches forecast (and current) data.
func (c *Client) Forecast(ctx context.Context, p Params) (*Response, error) {
	return c.get(ctx, "forecast", c.forecastURL, p)
}

// Archive fetches historical data from the archive endpoint.
func (c *Client) Archive(ctx context.Context, p Params) (*Response, error) {
	return c.get(ctx, "archive", c.archiveURL, p)
}

func (c *Client) get(ctx context.Context, endpoint, baseURL string, p Params) (*Response, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.RawQuery = p.values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug("fetching open-meteo data",
		"endpoint", endpoint,
		"latitude", p.Latitude,
		"longitude", p.Longitude,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		c.metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, &MalformedResponseError{Endpoint: endpoint, Err: err}
	}

	c.metrics.UpstreamRequests.WithLabelValues(endpoint, "success").Inc()
	return &apiResp, nil
}
