// Package weather fetches the current weather from open-meteo.
package weather

import (
	"context"

	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/model"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/pkg/errors"
)

// DefaultURL is the default forecast endpoint.
const DefaultURL = "https://api.open-meteo.com/v1/forecast"

// CurrentWeather is the current_weather object.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   *int    `json:"weathercode"`
	Time          string  `json:"time"`
}

// Code returns the weather code, treating a missing code as zero.
func (cw *CurrentWeather) Code() int {
	if cw.WeatherCode == nil {
		return 0
	}
	return *cw.WeatherCode
}

// Forecast is the subset of the forecast response we use.
type Forecast struct {
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	Timezone       string          `json:"timezone"`
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

// Report is the result of [*Client.Current].
type Report struct {
	// Current is never nil.
	Current *CurrentWeather

	// Raw is the untyped response body.
	Raw any
}

// Client talks to the forecast API.
type Client struct {
	// Config is the MANDATORY HTTP config.
	Config *httpclientx.Config

	// URL is the MANDATORY forecast endpoint.
	URL string
}

// NewClient creates a new [*Client] using [DefaultURL] when URL is empty.
func NewClient(config *httpclientx.Config, URL string) *Client {
	if URL == "" {
		URL = DefaultURL
	}
	return &Client{Config: config, URL: URL}
}

// Current returns the current weather at the given coordinate. A response
// without current_weather is a miss.
func (c *Client) Current(ctx context.Context, coord model.Coordinate) (*Report, error) {
	epnt := httpclientx.NewEndpoint(c.URL).
		WithParam("latitude", coord.Latitude).
		WithParam("longitude", coord.Longitude).
		WithParam("current_weather", true).
		WithParam("hourly", "temperature_2m,relative_humidity_2m").
		WithParam("timezone", "auto")
	doc, err := httpclientx.GetJSONDocument[*Forecast](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "fetching weather")
	}
	if doc.Value.CurrentWeather == nil {
		return nil, pipeline.NewMiss("no current weather in response")
	}
	return &Report{Current: doc.Value.CurrentWeather, Raw: doc.Raw}, nil
}

var conditions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	95: "Thunderstorm",
}

// ConditionText maps a WMO weather code to text.
func ConditionText(code int) string {
	if text, found := conditions[code]; found {
		return text
	}
	return "Unknown"
}
