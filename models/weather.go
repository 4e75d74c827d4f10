package models

// WeatherSnapshot represents a single point-in-time weather reading for a city
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"` // in Celsius
	Humidity    int     `json:"humidity"`    // percentage
	WindSpeed   float64 `json:"wind_speed"`  // in m/s
}
