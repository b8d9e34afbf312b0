// Package airquality resolves city names with the open-meteo geocoding API
// and fetches hourly air quality indexes for the resolved coordinate.
package airquality

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/model"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

const (
	// DefaultGeocodingURL is the default geocoding endpoint.
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	// DefaultAirQualityURL is the default air quality endpoint.
	DefaultAirQualityURL = "https://air-quality-api.open-meteo.com/v1/air-quality"

	// dateLayout is the layout of start_date and end_date.
	dateLayout = "2006-01-02"
)

// Place is a geocoding result.
type Place struct {
	Name       string
	Country    string
	Coordinate model.Coordinate
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Series is the hourly air quality series.
type Series struct {
	Time        []string   `json:"time"`
	EuropeanAQI []*float64 `json:"european_aqi"`
	USAQI       []*float64 `json:"us_aqi"`
}

type airQualityResponse struct {
	Hourly *Series `json:"hourly"`
}

// Hourly is the result of [*Client.Hourly].
type Hourly struct {
	// Series is never nil and has at least one time and one US AQI value.
	Series *Series

	// Raw is the untyped response body.
	Raw any
}

// Client talks to the geocoding and air quality APIs.
type Client struct {
	// Config is the MANDATORY HTTP config.
	Config *httpclientx.Config

	// GeocodingURL is the MANDATORY geocoding endpoint.
	GeocodingURL string

	// AirQualityURL is the MANDATORY air quality endpoint.
	AirQualityURL string
}

// NewClient creates a new [*Client] using the default endpoints for empty URLs.
func NewClient(config *httpclientx.Config, geocodingURL, airQualityURL string) *Client {
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if airQualityURL == "" {
		airQualityURL = DefaultAirQualityURL
	}
	return &Client{Config: config, GeocodingURL: geocodingURL, AirQualityURL: airQualityURL}
}

// Geocode resolves name to the first matching place.
func (c *Client) Geocode(ctx context.Context, name string) (*Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pipeline.NewInputError("city name cannot be empty")
	}
	epnt := httpclientx.NewEndpoint(c.GeocodingURL).
		WithParam("name", name).
		WithParam("count", 1)
	resp, err := httpclientx.GetJSON[*geocodingResponse](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding")
	}
	if len(resp.Results) <= 0 {
		return nil, pipeline.NewMiss("city not found")
	}
	first := resp.Results[0]
	return &Place{
		Name:    first.Name,
		Country: first.Country,
		Coordinate: model.Coordinate{
			Latitude:  first.Latitude,
			Longitude: first.Longitude,
		},
	}, nil
}

// LastWeek returns the start and end dates covering the seven days before now.
func LastWeek(now time.Time) (start, end time.Time) {
	end = now
	start = end.AddDate(0, 0, -7)
	return
}

// Hourly fetches the hourly European and US AQI between start and end.
func (c *Client) Hourly(ctx context.Context, coord model.Coordinate, start, end time.Time) (*Hourly, error) {
	epnt := httpclientx.NewEndpoint(c.AirQualityURL).
		WithParam("latitude", coord.Latitude).
		WithParam("longitude", coord.Longitude).
		WithParam("hourly", "european_aqi,us_aqi").
		WithParam("start_date", start.Format(dateLayout)).
		WithParam("end_date", end.Format(dateLayout)).
		WithParam("timezone", "auto")
	doc, err := httpclientx.GetJSONDocument[*airQualityResponse](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "fetching air quality")
	}
	series := doc.Value.Hourly
	if series == nil || len(series.Time) <= 0 || len(series.USAQI) <= 0 {
		return nil, pipeline.NewMiss("no AQI data available")
	}
	return &Hourly{Series: series, Raw: doc.Raw}, nil
}

// DailyMean is the mean of the hourly values of a single date.
type DailyMean struct {
	Date    string
	Mean    float64
	Samples int
}

// DailyMeans groups values by the date part of the corresponding
// timestamp and returns the mean per date sorted by date. The two slices
// are zipped, so extra elements of the longer one are ignored. Null
// values are skipped and dates with no values are omitted.
func DailyMeans(times []string, values []*float64) []DailyMean {
	groups := make(map[string][]float64)
	for idx := 0; idx < len(times) && idx < len(values); idx++ {
		if values[idx] == nil {
			continue
		}
		date, _, _ := strings.Cut(times[idx], "T")
		groups[date] = append(groups[date], *values[idx])
	}
	out := make([]DailyMean, 0, len(groups))
	for date, samples := range groups {
		mean, err := stats.Mean(samples)
		if err != nil {
			continue // cannot happen with non-empty input
		}
		out = append(out, DailyMean{Date: date, Mean: mean, Samples: len(samples)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
