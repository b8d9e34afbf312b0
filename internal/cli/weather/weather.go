package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/humanize"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	forecast "github.com/apitour/apitour-cli/internal/weather"
)

func init() {
	cmd := root.Command("weather", "Show the current weather in a city")
	city := cmd.Arg("city", "City name (e.g. delhi, new york)").Required().Strings()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Show(root.Context(), tour, log.Log, strings.Join(*city, " "))
		return nil
	})
}

// Show fetches and prints the current weather in city.
func Show(ctx context.Context, tour apitour.TourCLI, logger log.Interface, city string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "weather", city)

	coord, found := tour.Tables().Coordinate(city)
	if !found {
		inv.Finish(pipeline.KindMiss, fmt.Sprintf("city %q not found", city))
		logger.Infof("available cities: %s", strings.Join(tour.Tables().CityNames(), ", "))
		return pipeline.KindMiss
	}

	client := forecast.NewClient(tour.HTTPConfig(), tour.Config().Endpoints.Weather)
	res := pipeline.Classify(client.Current(ctx, coord))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}
	current := res.Value.Current

	output.Fields(logger, "Weather in "+humanize.Title(city), []output.Pair{
		output.P("Temperature", humanize.Fixed(current.Temperature, 1)+"°C"),
		output.P("Wind Speed", humanize.Fixed(current.WindSpeed, 1)+" km/h"),
		output.P("Wind Direction", humanize.Fixed(current.WindDirection, 0)+"°"),
		output.P("Condition", forecast.ConditionText(current.Code())),
	})
	inv.Save("weather", city, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}
