package openweather

import (
	"context"
	"fmt"

	"weather-report/models"

	"golang.org/x/time/rate"
)

// RateLimitedSnapshotSource wraps a SnapshotSource with rate limiting
type RateLimitedSnapshotSource struct {
	source  SnapshotSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSnapshotSource creates a new rate limited snapshot source
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedSnapshotSource(source SnapshotSource, rps float64, burst int) *RateLimitedSnapshotSource {
	return &RateLimitedSnapshotSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchSnapshot fetches current weather, respecting rate limits
func (r *RateLimitedSnapshotSource) FetchSnapshot(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying source
	return r.source.FetchSnapshot(ctx, city)
}

// Name returns the source name
func (r *RateLimitedSnapshotSource) Name() string {
	return r.name
}

// RateLimitedForecastSource wraps a ForecastSource with rate limiting
type RateLimitedForecastSource struct {
	source  ForecastSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedForecastSource creates a new rate limited forecast source
// rps is the maximum requests per second allowed
// burst is the maximum burst size allowed
func NewRateLimitedForecastSource(source ForecastSource, rps float64, burst int) *RateLimitedForecastSource {
	return &RateLimitedForecastSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedForecastSource) FetchForecast(ctx context.Context, city string) ([]models.ForecastEntry, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying source
	return r.source.FetchForecast(ctx, city)
}

// Name returns the source name
func (r *RateLimitedForecastSource) Name() string {
	return r.name
}

// RateLimitedClient wraps a Client with separate limiters for the two
// endpoints. PrintSnapshot is gated by the snapshot limiter since it performs
// one snapshot round trip.
type RateLimitedClient struct {
	client          *Client
	weatherLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedClient creates a client that serves both endpoints with rate limiting
// weatherRPS and forecastRPS are the maximum requests per second for the weather and forecast APIs
func NewRateLimitedClient(client *Client, weatherRPS, forecastRPS float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		client:          client,
		weatherLimiter:  rate.NewLimiter(rate.Limit(weatherRPS), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", client.Name()),
	}
}

// FetchSnapshot implements SnapshotSource with rate limiting
func (r *RateLimitedClient) FetchSnapshot(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	if err := r.weatherLimiter.Wait(ctx); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.client.FetchSnapshot(ctx, city)
}

// PrintSnapshot fetches and prints current weather under the snapshot limiter
func (r *RateLimitedClient) PrintSnapshot(ctx context.Context, city string) error {
	if err := r.weatherLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.client.PrintSnapshot(ctx, city)
}

// FetchForecast implements ForecastSource with rate limiting
func (r *RateLimitedClient) FetchForecast(ctx context.Context, city string) ([]models.ForecastEntry, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.client.FetchForecast(ctx, city)
}

// Name returns the client name
func (r *RateLimitedClient) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ SnapshotSource = (*RateLimitedSnapshotSource)(nil)
	_ ForecastSource = (*RateLimitedForecastSource)(nil)
	_ SnapshotSource = (*RateLimitedClient)(nil)
	_ ForecastSource = (*RateLimitedClient)(nil)
)
