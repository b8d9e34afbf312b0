package aqi

import (
	"context"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/airquality"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/humanize"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
)

func init() {
	cmd := root.Command("aqi", "Show the daily air quality of the last seven days")
	city := cmd.Arg("city", "City name (any city known to the geocoder)").Required().Strings()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Show(root.Context(), tour, log.Log, strings.Join(*city, " "), time.Now())
		return nil
	})
}

var columns = []output.Column{
	{Title: "Date", Width: 12},
	{Title: "Avg US AQI", Width: 12, Right: true},
	{Title: "Avg EU AQI", Width: 12, Right: true},
}

// Show geocodes city and prints the daily mean AQI for the week before now.
func Show(ctx context.Context, tour apitour.TourCLI, logger log.Interface, city string, now time.Time) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "aqi", city)
	endpoints := tour.Config().Endpoints
	client := airquality.NewClient(tour.HTTPConfig(), endpoints.Geocoding, endpoints.AirQuality)

	place := pipeline.Classify(client.Geocode(ctx, city))
	if !inv.Check(place.Kind, place.Reason) {
		return place.Kind
	}
	logger.Infof("Fetching last 7 days' AQI for %s, %s %s",
		place.Value.Name, place.Value.Country, place.Value.Coordinate)

	start, end := airquality.LastWeek(now)
	res := pipeline.Classify(client.Hourly(ctx, place.Value.Coordinate, start, end))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}
	series := res.Value.Series

	european := make(map[string]float64)
	for _, m := range airquality.DailyMeans(series.Time, series.EuropeanAQI) {
		european[m.Date] = m.Mean
	}
	var rows [][]string
	for _, m := range airquality.DailyMeans(series.Time, series.USAQI) {
		eu := "N/A"
		if v, found := european[m.Date]; found {
			eu = humanize.Fixed(v, 1)
		}
		rows = append(rows, []string{m.Date, humanize.Fixed(m.Mean, 1), eu})
	}
	if len(rows) <= 0 {
		inv.Finish(pipeline.KindMiss, "no AQI data available")
		return pipeline.KindMiss
	}

	output.Grid(logger, "Air Quality in "+place.Value.Name, columns, rows)
	inv.Save("aqi", city, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}
