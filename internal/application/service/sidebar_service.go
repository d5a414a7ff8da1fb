package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"repodash/internal/application/dto"
	"repodash/internal/domain/sidebar"
)

// SidebarOptions configures a SidebarService
type SidebarOptions struct {
	Latitude      float64
	Longitude     float64
	FallbackImage string
}

// SidebarService loads the weather and animal picture widgets
type SidebarService struct {
	weather sidebar.WeatherProvider
	images  sidebar.ImageProvider
	opts    SidebarOptions
}

// NewSidebarService creates a new sidebar service
func NewSidebarService(weather sidebar.WeatherProvider, images sidebar.ImageProvider, opts SidebarOptions) *SidebarService {
	return &SidebarService{
		weather: weather,
		images:  images,
		opts:    opts,
	}
}

// GetSidebar fetches weather and image concurrently. Nil coordinates fall back
// to the configured location. Only invalid coordinates produce an error; a weather
// failure leaves Weather nil and an image failure substitutes the placeholder.
func (s *SidebarService) GetSidebar(ctx context.Context, latitude, longitude *float64) (*dto.SidebarResponse, error) {
	lat, lon := s.opts.Latitude, s.opts.Longitude
	if latitude != nil {
		lat = *latitude
	}
	if longitude != nil {
		lon = *longitude
	}

	at, err := sidebar.NewCoordinates(lat, lon)
	if err != nil {
		return nil, err
	}

	resp := &dto.SidebarResponse{
		Latitude:  at.Latitude(),
		Longitude: at.Longitude(),
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		resp.Weather = s.currentWeather(ctx, at)
	})
	wg.Go(func() {
		resp.Image = s.RefreshImage(ctx)
	})
	wg.Wait()

	return resp, nil
}

// RefreshImage fetches a new random image, substituting the placeholder on any failure
func (s *SidebarService) RefreshImage(ctx context.Context) dto.ImageResponse {
	url, err := s.images.RandomImageURL(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("image fetch failed, using placeholder")
		return dto.ImageResponse{URL: s.opts.FallbackImage, Fallback: true}
	}
	return dto.ImageResponse{URL: url}
}

func (s *SidebarService) currentWeather(ctx context.Context, at sidebar.Coordinates) *dto.WeatherResponse {
	w, err := s.weather.CurrentWeather(ctx, at)
	if err != nil {
		log.Warn().
			Err(err).
			Float64("latitude", at.Latitude()).
			Float64("longitude", at.Longitude()).
			Msg("weather fetch failed")
		return nil
	}
	return &dto.WeatherResponse{
		Temperature:   w.Temperature,
		WindSpeed:     w.WindSpeed,
		WindDirection: w.WindDirection,
	}
}
