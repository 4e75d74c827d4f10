package openweather

import (
	"context"
	"fmt"

	"weather-report/models"
)

// currentResponse mirrors the part of the /weather body the client reads.
// Pointer fields distinguish an absent key from a zero value.
type currentResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// FetchSnapshot fetches the current weather for a city
func (c *Client) FetchSnapshot(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	var response currentResponse
	if err := c.getJSON(ctx, "weather", city, &response); err != nil {
		return models.WeatherSnapshot{}, err
	}

	// Check required fields
	switch {
	case response.Main == nil:
		return models.WeatherSnapshot{}, missingField("main")
	case response.Main.Temp == nil:
		return models.WeatherSnapshot{}, missingField("main.temp")
	case response.Main.Humidity == nil:
		return models.WeatherSnapshot{}, missingField("main.humidity")
	case response.Wind == nil:
		return models.WeatherSnapshot{}, missingField("wind")
	case response.Wind.Speed == nil:
		return models.WeatherSnapshot{}, missingField("wind.speed")
	}

	return models.WeatherSnapshot{
		Temperature: *response.Main.Temp,
		Humidity:    *response.Main.Humidity,
		WindSpeed:   *response.Wind.Speed,
	}, nil
}

// PrintSnapshot fetches the current weather for a city and writes a single
// report line to the client's output writer. Nothing is written when the
// fetch fails.
func (c *Client) PrintSnapshot(ctx context.Context, city string) error {
	snapshot, err := c.FetchSnapshot(ctx, city)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.out, "Weather in %s: %.1f°C, humidity %d%%, wind %.1f m/s\n",
		city, snapshot.Temperature, snapshot.Humidity, snapshot.WindSpeed)
	return err
}
