package movie

import (
	"context"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/movies"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
)

// plotWidth is the column at which the plot is wrapped.
const plotWidth = 72

func init() {
	cmd := root.Command("movie", "Look up movies on OMDb")

	searchCmd := cmd.Command("search", "Search movies by title")
	term := searchCmd.Arg("term", "Search term").Required().Strings()
	searchCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Search(root.Context(), tour, log.Log, strings.Join(*term, " "))
		return nil
	})

	detailsCmd := cmd.Command("details", "Show the details of a movie")
	title := detailsCmd.Arg("title", "Exact movie title").Required().Strings()
	detailsCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Details(root.Context(), tour, log.Log, strings.Join(*title, " "))
		return nil
	})
}

func newClient(tour apitour.TourCLI) *movies.Client {
	cfg := tour.Config()
	return movies.NewClient(tour.HTTPConfig(), cfg.Endpoints.Movies, cfg.OMDbAPIKey())
}

var searchColumns = []output.Column{
	{Title: "#", Width: 4, Right: true},
	{Title: "Title", Width: 40},
	{Title: "Year", Width: 10},
	{Title: "IMDb ID", Width: 10},
}

// Search prints the movies matching term.
func Search(ctx context.Context, tour apitour.TourCLI, logger log.Interface, term string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "movie search", term)
	res := pipeline.Classify(newClient(tour).Search(ctx, term))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}

	var rows [][]string
	for idx, hit := range res.Value.Hits {
		rows = append(rows, []string{
			strconv.Itoa(idx + 1),
			hit.Title,
			hit.Year,
			hit.IMDbID,
		})
	}
	title := "Search Results"
	if res.Value.Total != "" {
		title += " (" + res.Value.Total + " total)"
	}
	output.Grid(logger, title, searchColumns, rows)
	inv.Save("movie_search", term, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}

// Details prints the details of the movie whose title is name.
func Details(ctx context.Context, tour apitour.TourCLI, logger log.Interface, name string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "movie details", name)
	res := pipeline.Classify(newClient(tour).Details(ctx, name))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}
	m := res.Value.Movie

	output.Fields(logger, "Movie Details", []output.Pair{
		output.P("Title", m.Title),
		output.P("Year", m.Year),
		output.P("Genre", movies.OrNA(m.Genre)),
		output.P("Runtime", movies.OrNA(m.Runtime)),
		output.P("Director", movies.OrNA(m.Director)),
		output.P("Actors", movies.OrNA(m.Actors)),
		output.P("IMDb", movies.OrNA(m.IMDbRating)),
		output.P("BoxOffice", movies.OrNA(m.BoxOffice)),
		output.P("Awards", movies.OrNA(m.Awards)),
	})
	if len(m.Ratings) > 0 {
		var ratings []output.Pair
		for _, r := range m.Ratings {
			ratings = append(ratings, output.P(r.Source, r.Value))
		}
		output.Fields(logger, "Ratings", ratings)
	}
	output.Paragraph(logger, "Plot", movies.OrNA(m.Plot), plotWidth)
	inv.Save("movie", name, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}
