package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-report/models"
)

// stubSnapshotSource returns fixed data and records the last city asked for.
type stubSnapshotSource struct {
	snapshot models.WeatherSnapshot
	err      error
	lastCity string
}

func (s *stubSnapshotSource) FetchSnapshot(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	s.lastCity = city
	return s.snapshot, s.err
}

func (s *stubSnapshotSource) Name() string {
	return "Stub"
}

type stubForecastSource struct {
	entries []models.ForecastEntry
}

func (s *stubForecastSource) FetchForecast(ctx context.Context, city string) ([]models.ForecastEntry, error) {
	return s.entries, nil
}

func (s *stubForecastSource) Name() string {
	return "Stub"
}

func TestRateLimitedSnapshotSource(t *testing.T) {
	t.Run("forwards result unchanged", func(t *testing.T) {
		stub := &stubSnapshotSource{snapshot: models.WeatherSnapshot{Temperature: 21.5, Humidity: 60, WindSpeed: 3.2}}
		limited := NewRateLimitedSnapshotSource(stub, 100, 1)

		snapshot, err := limited.FetchSnapshot(context.Background(), "Odessa")
		if err != nil {
			t.Fatalf("FetchSnapshot failed: %v", err)
		}
		if snapshot != stub.snapshot {
			t.Errorf("snapshot = %v, want %v", snapshot, stub.snapshot)
		}
		if stub.lastCity != "Odessa" {
			t.Errorf("city = %q, want Odessa", stub.lastCity)
		}
	})

	t.Run("forwards errors", func(t *testing.T) {
		wantErr := errors.New("upstream broke")
		stub := &stubSnapshotSource{err: wantErr}
		limited := NewRateLimitedSnapshotSource(stub, 100, 1)

		_, err := limited.FetchSnapshot(context.Background(), "Odessa")
		if !errors.Is(err, wantErr) {
			t.Fatalf("want the stub's error, got %v", err)
		}
	})

	t.Run("decorated name", func(t *testing.T) {
		limited := NewRateLimitedSnapshotSource(&stubSnapshotSource{}, 1, 1)
		if limited.Name() != "Stub [Rate Limited]" {
			t.Errorf("name = %q", limited.Name())
		}
	})

	t.Run("canceled context fails fast", func(t *testing.T) {
		limited := NewRateLimitedSnapshotSource(&stubSnapshotSource{}, 0.001, 1)
		ctx, cancel := context.WithCancel(context.Background())

		// Drain the single burst token, then cancel while the next call waits
		if _, err := limited.FetchSnapshot(ctx, "Odessa"); err != nil {
			t.Fatalf("first call should pass: %v", err)
		}
		cancel()
		if _, err := limited.FetchSnapshot(ctx, "Odessa"); err == nil {
			t.Fatal("want an error after cancellation")
		}
	})
}

func TestRateLimitedForecastSource(t *testing.T) {
	entries := []models.ForecastEntry{{Date: "2023-11-14", Temp: 10, Humidity: 50, WindSpeed: 2}}
	limited := NewRateLimitedForecastSource(&stubForecastSource{entries: entries}, 100, 1)

	forecast, err := limited.FetchForecast(context.Background(), "Odessa")
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if len(forecast) != 1 || forecast[0] != entries[0] {
		t.Errorf("forecast = %v, want %v", forecast, entries)
	}
	if limited.Name() != "Stub [Rate Limited]" {
		t.Errorf("name = %q", limited.Name())
	}
}

func TestRateLimitedClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, `{"main":{"temp":21.5,"humidity":60},"wind":{"speed":3.2}}`)
		case "/forecast":
			fmt.Fprint(w, forecastBody(2))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, out := newTestClient(server.URL)
	limited := NewRateLimitedClient(client, 100, 100, 5)

	if limited.Name() != "OpenWeatherMap [Rate Limited]" {
		t.Errorf("name = %q", limited.Name())
	}

	snapshot, err := limited.FetchSnapshot(context.Background(), "Odessa")
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}
	if snapshot.Temperature != 21.5 {
		t.Errorf("temperature = %v, want 21.5", snapshot.Temperature)
	}

	if err := limited.PrintSnapshot(context.Background(), "Odessa"); err != nil {
		t.Fatalf("PrintSnapshot failed: %v", err)
	}
	if out.Len() == 0 {
		t.Error("PrintSnapshot should write through to the client's writer")
	}

	forecast, err := limited.FetchForecast(context.Background(), "Odessa")
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if len(forecast) != 2 {
		t.Errorf("len = %d, want 2", len(forecast))
	}
}
