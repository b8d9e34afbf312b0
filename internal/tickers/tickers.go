// Package tickers fetches cryptocurrency tickers from CoinPaprika.
package tickers

import (
	"context"

	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/pkg/errors"
)

// DefaultURL is the default tickers endpoint.
const DefaultURL = "https://api.coinpaprika.com/v1/tickers"

// Quote is a price quote in a given currency.
type Quote struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	MarketCap        float64 `json:"market_cap"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
}

// Ticker is a coin ticker.
type Ticker struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Symbol string            `json:"symbol"`
	Rank   int               `json:"rank"`
	Quotes map[string]*Quote `json:"quotes"`
}

// USD returns the USD quote or nil.
func (t *Ticker) USD() *Quote {
	return t.Quotes["USD"]
}

// Single is the result of [*Client.Ticker].
type Single struct {
	// Ticker always has a USD quote.
	Ticker *Ticker

	// Raw is the untyped response body.
	Raw any
}

// Ranking is the result of [*Client.Top].
type Ranking struct {
	// Tickers is non empty. Entries without a USD quote are dropped.
	Tickers []*Ticker

	// Raw is the untyped response body.
	Raw any
}

// Client talks to the tickers API.
type Client struct {
	// Config is the MANDATORY HTTP config.
	Config *httpclientx.Config

	// URL is the MANDATORY tickers endpoint.
	URL string
}

// NewClient creates a new [*Client] using [DefaultURL] when URL is empty.
func NewClient(config *httpclientx.Config, URL string) *Client {
	if URL == "" {
		URL = DefaultURL
	}
	return &Client{Config: config, URL: URL}
}

// Ticker fetches the ticker of the coin with the given provider slug.
func (c *Client) Ticker(ctx context.Context, slug string) (*Single, error) {
	if slug == "" {
		return nil, pipeline.NewInputError("coin name cannot be empty")
	}
	epnt := httpclientx.NewEndpoint(c.URL).WithPath(slug)
	doc, err := httpclientx.GetJSONDocument[*Ticker](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching ticker %s", slug)
	}
	if doc.Value.USD() == nil {
		return nil, pipeline.NewMiss("no USD quote for " + slug)
	}
	return &Single{Ticker: doc.Value, Raw: doc.Raw}, nil
}

// Top fetches the first limit tickers by market cap.
func (c *Client) Top(ctx context.Context, limit int) (*Ranking, error) {
	if limit <= 0 {
		return nil, pipeline.NewInputError("limit must be a positive integer")
	}
	epnt := httpclientx.NewEndpoint(c.URL).WithParam("limit", limit)
	doc, err := httpclientx.GetJSONDocument[[]*Ticker](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "fetching top tickers")
	}
	var out []*Ticker
	for _, t := range doc.Value {
		if t != nil && t.USD() != nil {
			out = append(out, t)
		}
	}
	// the API ignores limit on some mirrors
	if len(out) > limit {
		out = out[:limit]
	}
	if len(out) <= 0 {
		return nil, pipeline.NewMiss("no tickers available")
	}
	return &Ranking{Tickers: out, Raw: doc.Raw}, nil
}
