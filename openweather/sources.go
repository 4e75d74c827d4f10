package openweather

import (
	"context"

	"weather-report/models"
)

// SnapshotSource is an interface for services that can fetch current weather data
type SnapshotSource interface {
	// FetchSnapshot fetches the current weather for a city
	FetchSnapshot(ctx context.Context, city string) (models.WeatherSnapshot, error)

	// Name returns the source's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the upcoming forecast entries for a city
	FetchForecast(ctx context.Context, city string) ([]models.ForecastEntry, error)

	// Name returns the source's name
	Name() string
}
