package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repodash/internal/domain/sidebar"
	"repodash/internal/openmeteo"
)

func coords(t *testing.T, lat, lon float64) sidebar.Coordinates {
	t.Helper()
	c, err := sidebar.NewCoordinates(lat, lon)
	require.NoError(t, err)
	return c
}

func TestCurrentWeather(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"latitude":        r.URL.Query().Get("latitude"),
			"longitude":       r.URL.Query().Get("longitude"),
			"current_weather": r.URL.Query().Get("current_weather"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":31.22,"longitude":121.46,
			"current_weather":{"temperature":21.5,"windspeed":12.3,"winddirection":270,"weathercode":3}}`))
	}))
	defer srv.Close()

	client := openmeteo.NewClient(srv.URL+"/", "repodash-test", time.Second)
	w, err := client.CurrentWeather(context.Background(), coords(t, 31.2304, 121.4737))
	require.NoError(t, err)

	assert.Equal(t, "/v1/forecast", gotPath)
	assert.Equal(t, "31.2304", gotQuery["latitude"])
	assert.Equal(t, "121.4737", gotQuery["longitude"])
	assert.Equal(t, "true", gotQuery["current_weather"])

	assert.Equal(t, 21.5, w.Temperature)
	assert.Equal(t, 12.3, w.WindSpeed)
	assert.Equal(t, 270.0, w.WindDirection)
}

func TestCurrentWeather_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"reason":"boom"}`},
		{"bad request", http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range"}`},
		{"malformed json", http.StatusOK, `{"current_weather":`},
		{"missing current weather", http.StatusOK, `{"latitude":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := openmeteo.NewClient(srv.URL, "", time.Second)
			w, err := client.CurrentWeather(context.Background(), coords(t, 0, 0))
			assert.Error(t, err)
			assert.Nil(t, w)
		})
	}
}

func TestCurrentWeather_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current_weather":{"temperature":1}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := openmeteo.NewClient(srv.URL, "", time.Second)
	_, err := client.CurrentWeather(ctx, coords(t, 0, 0))
	assert.ErrorIs(t, err, context.Canceled)
}
