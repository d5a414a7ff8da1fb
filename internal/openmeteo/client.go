package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"repodash/internal/domain/sidebar"
)

// DefaultBaseURL is the public Open-Meteo API root
const DefaultBaseURL = "https://api.open-meteo.com"

// Client handles Open-Meteo forecast API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new Open-Meteo client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
	} `json:"current_weather"`
}

// CurrentWeather fetches the current weather at the given coordinates
func (c *Client) CurrentWeather(ctx context.Context, at sidebar.Coordinates) (*sidebar.Weather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(at.Latitude(), 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Longitude(), 'f', -1, 64))
	q.Set("current_weather", "true")

	endpoint := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("open-meteo API returned status %d: %s", resp.StatusCode, string(body))
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}

	if forecast.CurrentWeather == nil {
		return nil, fmt.Errorf("forecast response has no current_weather")
	}

	return &sidebar.Weather{
		Temperature:   forecast.CurrentWeather.Temperature,
		WindSpeed:     forecast.CurrentWeather.WindSpeed,
		WindDirection: forecast.CurrentWeather.WindDirection,
	}, nil
}
