package sidebar

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCoordinates is wrapped by every coordinate validation failure
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a value object for a weather lookup location
type Coordinates struct {
	latitude  float64
	longitude float64
}

// NewCoordinates creates Coordinates with range validation
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -90 || latitude > 90 {
		return Coordinates{}, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinates{}, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, longitude)
	}
	return Coordinates{latitude: latitude, longitude: longitude}, nil
}

func (c Coordinates) Latitude() float64 {
	return c.latitude
}

func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// Weather is the current weather at a location
type Weather struct {
	Temperature   float64 // °C
	WindSpeed     float64 // km/h
	WindDirection float64 // degrees
}

// WeatherProvider fetches current weather. Implementation will be in infrastructure layer
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, at Coordinates) (*Weather, error)
}

// ImageProvider fetches a random image URL. Implementation will be in infrastructure layer
type ImageProvider interface {
	RandomImageURL(ctx context.Context) (string, error)
}
