package openweather

import (
	"context"
	"fmt"
	"time"

	"weather-report/models"
)

// maxForecastEntries caps how many samples of the 5-day forecast are returned.
const maxForecastEntries = 5

// forecastResponse mirrors the part of the /forecast body the client reads.
// Pointer fields distinguish an absent key from a zero value.
type forecastResponse struct {
	List []struct {
		Dt   *int64 `json:"dt"`
		Main *struct {
			Temp     *float64 `json:"temp"`
			Humidity *int     `json:"humidity"`
		} `json:"main"`
		Wind *struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// FetchForecast fetches the upcoming forecast for a city and returns up to
// five entries in upstream order, fewer when the response has fewer. Entries
// past the cap are never inspected.
func (c *Client) FetchForecast(ctx context.Context, city string) ([]models.ForecastEntry, error) {
	var response forecastResponse
	if err := c.getJSON(ctx, "forecast", city, &response); err != nil {
		return nil, err
	}

	if response.List == nil {
		return nil, missingField("list")
	}

	maxEntries := maxForecastEntries
	if maxEntries > len(response.List) {
		maxEntries = len(response.List)
	}

	entries := make([]models.ForecastEntry, 0, maxEntries)
	for i := 0; i < maxEntries; i++ {
		item := response.List[i]

		// Check required fields
		switch {
		case item.Dt == nil:
			return nil, missingField(fmt.Sprintf("list[%d].dt", i))
		case item.Main == nil:
			return nil, missingField(fmt.Sprintf("list[%d].main", i))
		case item.Main.Temp == nil:
			return nil, missingField(fmt.Sprintf("list[%d].main.temp", i))
		case item.Main.Humidity == nil:
			return nil, missingField(fmt.Sprintf("list[%d].main.humidity", i))
		case item.Wind == nil:
			return nil, missingField(fmt.Sprintf("list[%d].wind", i))
		case item.Wind.Speed == nil:
			return nil, missingField(fmt.Sprintf("list[%d].wind.speed", i))
		}

		// Convert timestamp to a calendar date in the client's time zone
		date := time.Unix(*item.Dt, 0).In(c.loc).Format("2006-01-02")

		entries = append(entries, models.ForecastEntry{
			Date:      date,
			Temp:      *item.Main.Temp,
			Humidity:  *item.Main.Humidity,
			WindSpeed: *item.Wind.Speed,
		})
	}

	return entries, nil
}
