package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"weather-report/models"
	"weather-report/openweather"
)

// MockSnapshotSource is a simple mock that simulates latency and counts calls
type MockSnapshotSource struct {
	callCount int
	latency   time.Duration
}

func NewMockSnapshotSource(latency time.Duration) *MockSnapshotSource {
	return &MockSnapshotSource{latency: latency}
}

func (m *MockSnapshotSource) FetchSnapshot(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	m.callCount++

	// Log request time
	now := time.Now()
	fmt.Printf("%s - Processing request #%d for %s\n", now.Format("15:04:05.000"), m.callCount, city)

	// Simulate work/latency
	select {
	case <-time.After(m.latency):
		// Continue processing
	case <-ctx.Done():
		return models.WeatherSnapshot{}, ctx.Err()
	}

	return models.WeatherSnapshot{
		Temperature: 22.5,
		Humidity:    60,
		WindSpeed:   5.5,
	}, nil
}

func (m *MockSnapshotSource) Name() string {
	return "MockSource"
}

func main() {
	// Parse command-line flags
	requestsPerSecond := flag.Float64("rps", 1.0, "Rate limit in requests per second")
	burstSize := flag.Int("burst", 3, "Maximum burst size")
	totalRequests := flag.Int("requests", 10, "Total number of requests to make")
	flag.Parse()

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Create a mock source with 200ms response time
	mockSource := NewMockSnapshotSource(200 * time.Millisecond)

	// Wrap with rate limiter
	rateLimitedSource := openweather.NewRateLimitedSnapshotSource(mockSource, *requestsPerSecond, *burstSize)

	fmt.Printf("Testing rate limiter with:\n")
	fmt.Printf("- Rate limit: %.2f requests/second\n", *requestsPerSecond)
	fmt.Printf("- Burst size: %d\n", *burstSize)
	fmt.Printf("- Total requests: %d\n", *totalRequests)
	fmt.Println("Starting test...")

	// Record start time
	startTime := time.Now()

	// Make requests sequentially; the fetch path itself is synchronous
	for i := 1; i <= *totalRequests; i++ {
		requestStart := time.Now()

		_, err := rateLimitedSource.FetchSnapshot(ctx, "Odessa")
		if err != nil {
			fmt.Printf("Request #%d failed: %v\n", i, err)
			continue
		}

		fmt.Printf("Request #%d completed in %v\n", i, time.Since(requestStart).Round(time.Millisecond))
	}

	// Report aggregate timing
	totalTime := time.Since(startTime)
	fmt.Println("Test completed.")
	fmt.Printf("- Total time: %v\n", totalTime.Round(time.Millisecond))
	fmt.Printf("- Average time per request: %v\n", (totalTime / time.Duration(*totalRequests)).Round(time.Millisecond))
	fmt.Printf("- Effective rate: %.2f requests/second\n", float64(*totalRequests)/totalTime.Seconds())
}
