package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// defaultBaseURL is the OpenWeatherMap API root shared by both endpoints.
const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

var (
	// ErrTransport reports a failed round trip: the request could not be
	// built or sent, the server answered with a non-200 status, or the body
	// could not be read or decoded as JSON.
	ErrTransport = errors.New("transport failure")

	// ErrMissingField reports a response body that decoded fine but lacks a
	// field the client needs. The wrapped message carries the dotted path of
	// the absent field.
	ErrMissingField = errors.New("missing field in response")
)

// missingField wraps ErrMissingField with the dotted path of the absent field.
func missingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

// Client talks to the OpenWeatherMap API. It holds the credential and the
// request plumbing shared by the current-weather and forecast endpoints; the
// response shaping for each endpoint lives next to that endpoint. All
// configuration is fixed at construction and never mutated afterwards.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// out receives the line written by PrintSnapshot.
	out io.Writer
	// loc is the time zone used to turn forecast timestamps into dates.
	loc *time.Location
}

// NewClient creates an OpenWeatherMap client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		out: os.Stdout,
		loc: time.Local,
	}
}

// Name returns the upstream provider name.
func (c *Client) Name() string {
	return "OpenWeatherMap"
}

// getJSON performs one GET round trip against the given endpoint path and
// decodes the body into dst. Both endpoints take the same query parameters.
func (c *Client) getJSON(ctx context.Context, path, city string, dst interface{}) error {
	// Build URL
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, path)
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric") // Use metric units

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrTransport, err)
	}

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: API error (status %d): %s", ErrTransport, resp.StatusCode, body)
	}

	// Parse response
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: failed to parse response: %w", ErrTransport, err)
	}

	return nil
}

// Verify that Client serves both endpoints
var (
	_ SnapshotSource = (*Client)(nil)
	_ ForecastSource = (*Client)(nil)
)
