package dto

// WeatherResponse is the current weather block of the sidebar
type WeatherResponse struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
}

// ImageResponse is the animal picture block of the sidebar
type ImageResponse struct {
	URL      string `json:"url"`
	Fallback bool   `json:"fallback"`
}

// SidebarResponse combines both sidebar widgets. Weather is nil when unavailable.
type SidebarResponse struct {
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Weather   *WeatherResponse `json:"weather"`
	Image     ImageResponse    `json:"image"`
}
