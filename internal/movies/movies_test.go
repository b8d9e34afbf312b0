package movies

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/model"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	mu    sync.Mutex
	query url.Values
	body  string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.query = req.URL.Query()
	r.mu.Unlock()
	w.Write([]byte(r.body))
}

func newClient(URL string) *Client {
	return NewClient(&httpclientx.Config{
		Client:    http.DefaultClient,
		Logger:    model.DiscardLogger,
		UserAgent: model.HTTPHeaderUserAgent,
	}, URL, "testkey")
}

func TestSearch(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		rec := &recorder{body: `{"Search": [{"Title": "Inception", "Year": "2010",
			"imdbID": "tt1375666", "Type": "movie"}], "totalResults": "1", "Response": "True"}`}
		server := httptest.NewServer(rec)
		defer server.Close()

		results, err := newClient(server.URL).Search(context.Background(), "inception")
		if err != nil {
			t.Fatal(err)
		}
		expect := []SearchHit{{Title: "Inception", Year: "2010", IMDbID: "tt1375666", Type: "movie"}}
		if diff := cmp.Diff(expect, results.Hits); diff != "" {
			t.Fatal(diff)
		}
		rec.mu.Lock()
		defer rec.mu.Unlock()
		if rec.query.Get("apikey") != "testkey" || rec.query.Get("s") != "inception" {
			t.Fatal("unexpected query", rec.query)
		}
	})

	t.Run("negative response is a miss", func(t *testing.T) {
		rec := &recorder{body: `{"Response": "False", "Error": "Movie not found!"}`}
		server := httptest.NewServer(rec)
		defer server.Close()

		results, err := newClient(server.URL).Search(context.Background(), "qwertyuiop")
		res := pipeline.Classify(results, err)
		if res.Kind != pipeline.KindMiss || res.Reason != "Movie not found!" {
			t.Fatal("unexpected result", res.Kind, res.Reason)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := newClient("http://127.0.0.1:1").Search(context.Background(), "  ")
		if !errors.Is(err, pipeline.ErrInvalidInput) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestDetails(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		rec := &recorder{body: `{"Title": "Inception", "Year": "2010", "Genre": "Action, Sci-Fi",
			"Ratings": [{"Source": "Internet Movie Database", "Value": "8.8/10"}],
			"Plot": "A thief...", "Response": "True"}`}
		server := httptest.NewServer(rec)
		defer server.Close()

		details, err := newClient(server.URL).Details(context.Background(), "Inception")
		if err != nil {
			t.Fatal(err)
		}
		if details.Movie.Genre != "Action, Sci-Fi" || len(details.Movie.Ratings) != 1 {
			t.Fatal("unexpected movie", details.Movie)
		}
		if OrNA(details.Movie.BoxOffice) != "N/A" {
			t.Fatal("expected N/A box office")
		}
		rec.mu.Lock()
		defer rec.mu.Unlock()
		if rec.query.Get("t") != "Inception" || rec.query.Get("plot") != "full" {
			t.Fatal("unexpected query", rec.query)
		}
	})

	t.Run("negative response without error text", func(t *testing.T) {
		rec := &recorder{body: `{"Response": "False"}`}
		server := httptest.NewServer(rec)
		defer server.Close()

		_, err := newClient(server.URL).Details(context.Background(), "x")
		if !errors.Is(err, pipeline.ErrMiss) || err.Error() != "no results" {
			t.Fatal("unexpected error", err)
		}
	})
}
