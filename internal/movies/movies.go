// Package movies queries the OMDb movie database.
package movies

import (
	"context"
	"strings"

	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/pkg/errors"
)

// DefaultURL is the default OMDb endpoint.
const DefaultURL = "https://www.omdbapi.com/"

// envelope contains the fields shared by every OMDb response.
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// check converts a negative response into a miss.
func (e *envelope) check() error {
	if e.Response == "True" {
		return nil
	}
	reason := e.Error
	if reason == "" {
		reason = "no results"
	}
	return pipeline.NewMiss(reason)
}

// SearchHit is an entry of the search results.
type SearchHit struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
}

type searchResponse struct {
	envelope
	Search       []SearchHit `json:"Search"`
	TotalResults string      `json:"totalResults"`
}

// SearchResults is the result of [*Client.Search].
type SearchResults struct {
	Hits  []SearchHit
	Total string
	Raw   any
}

// Rating is a rating from a given source.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Movie contains the details of a title.
type Movie struct {
	envelope
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Awards     string   `json:"Awards"`
	IMDbRating string   `json:"imdbRating"`
	IMDbID     string   `json:"imdbID"`
	BoxOffice  string   `json:"BoxOffice"`
	Ratings    []Rating `json:"Ratings"`
}

// Details is the result of [*Client.Details].
type Details struct {
	Movie *Movie
	Raw   any
}

// Client talks to OMDb.
type Client struct {
	// APIKey is the MANDATORY OMDb key.
	APIKey string

	// Config is the MANDATORY HTTP config.
	Config *httpclientx.Config

	// URL is the MANDATORY OMDb endpoint.
	URL string
}

// NewClient creates a new [*Client] using [DefaultURL] when URL is empty.
func NewClient(config *httpclientx.Config, URL, apiKey string) *Client {
	if URL == "" {
		URL = DefaultURL
	}
	return &Client{APIKey: apiKey, Config: config, URL: URL}
}

func (c *Client) endpoint() *httpclientx.Endpoint {
	return httpclientx.NewEndpoint(c.URL).WithParam("apikey", c.APIKey)
}

// Search returns the titles matching term.
func (c *Client) Search(ctx context.Context, term string) (*SearchResults, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, pipeline.NewInputError("movie name cannot be empty")
	}
	doc, err := httpclientx.GetJSONDocument[*searchResponse](ctx, c.endpoint().WithParam("s", term), c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "searching movies")
	}
	if err := doc.Value.check(); err != nil {
		return nil, err
	}
	return &SearchResults{Hits: doc.Value.Search, Total: doc.Value.TotalResults, Raw: doc.Raw}, nil
}

// Details returns the details of the title matching exactly name.
func (c *Client) Details(ctx context.Context, name string) (*Details, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pipeline.NewInputError("movie name cannot be empty")
	}
	epnt := c.endpoint().WithParam("t", name).WithParam("plot", "full")
	doc, err := httpclientx.GetJSONDocument[*Movie](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "fetching movie details")
	}
	if err := doc.Value.check(); err != nil {
		return nil, err
	}
	return &Details{Movie: doc.Value, Raw: doc.Raw}, nil
}

// OrNA returns value or "N/A" when value is empty.
func OrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
