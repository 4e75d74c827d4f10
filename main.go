package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"weather-report/openweather"

	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", "error", err)
	}

	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		logger.Error("OPENWEATHER_API_KEY is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
	// Allow bursts of up to 5 requests
	client := openweather.NewRateLimitedClient(openweather.NewClient(apiKey), 1.0, 1.0, 5)

	city := "Odessa"

	if err := client.PrintSnapshot(ctx, city); err != nil {
		logger.Error("failed to report current weather", "city", city, "error", err)
		os.Exit(1)
	}

	forecast, err := client.FetchForecast(ctx, city)
	if err != nil {
		logger.Error("failed to fetch forecast", "city", city, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Forecast for %s:\n", city)
	for _, entry := range forecast {
		fmt.Printf("%s: %.1f°C, humidity %d%%, wind %.1f m/s\n",
			entry.Date, entry.Temp, entry.Humidity, entry.WindSpeed)
	}
}
