package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"repodash/internal/application/service"
	"repodash/internal/cli"
	"repodash/internal/dogceo"
	"repodash/internal/openmeteo"
)

func init() {
	sidebarCmd.Flags().Float64("lat", 0, "latitude (default from SIDEBAR_LATITUDE)")
	sidebarCmd.Flags().Float64("lon", 0, "longitude (default from SIDEBAR_LONGITUDE)")
	rootCmd.AddCommand(sidebarCmd)
}

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Show the current weather and a random dog picture",
	RunE: func(cmd *cobra.Command, args []string) error {
		var latitude, longitude *float64
		if cmd.Flags().Changed("lat") {
			v, _ := cmd.Flags().GetFloat64("lat")
			latitude = &v
		}
		if cmd.Flags().Changed("lon") {
			v, _ := cmd.Flags().GetFloat64("lon")
			longitude = &v
		}

		sidebarService := service.NewSidebarService(
			openmeteo.NewClient(cfg.Sidebar.WeatherURL, cfg.GitHub.UserAgent, cfg.Sidebar.Timeout),
			dogceo.NewClient(cfg.Sidebar.ImageURL, cfg.GitHub.UserAgent, cfg.Sidebar.Timeout),
			service.SidebarOptions{
				Latitude:      cfg.Sidebar.Latitude,
				Longitude:     cfg.Sidebar.Longitude,
				FallbackImage: cfg.Sidebar.FallbackImage,
			},
		)

		resp, err := sidebarService.GetSidebar(cmd.Context(), latitude, longitude)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		cli.RenderSidebar(os.Stdout, resp)
		return nil
	},
}
