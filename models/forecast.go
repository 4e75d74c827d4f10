package models

// ForecastEntry represents one predicted weather sample with its calendar date
type ForecastEntry struct {
	Date      string  `json:"date"`       // calendar date formatted as YYYY-MM-DD
	Temp      float64 `json:"temp"`       // in Celsius
	Humidity  int     `json:"humidity"`   // percentage
	WindSpeed float64 `json:"wind_speed"` // in m/s
}
