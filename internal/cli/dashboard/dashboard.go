// Package dashboard contains the interactive dashboard command. Each
// menu entry collects its inputs and runs the same code as the
// corresponding one-shot command.
package dashboard

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/aqi"
	"github.com/apitour/apitour-cli/internal/cli/crypto"
	"github.com/apitour/apitour-cli/internal/cli/movie"
	"github.com/apitour/apitour-cli/internal/cli/posts"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/cli/todos"
	"github.com/apitour/apitour-cli/internal/cli/users"
	"github.com/apitour/apitour-cli/internal/cli/weather"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/placeholder"
	"github.com/pkg/errors"
)

func init() {
	cmd := root.Command("dashboard", "Run the interactive dashboard")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		d := &Dashboard{
			Logger:   log.Log,
			Progress: os.Stderr,
			Prompter: surveyPrompter{},
			Tour:     tour,
		}
		return d.Run(root.Context())
	})
}

// exitItem is the menu entry that leaves the dashboard.
const exitItem = "Exit"

// Dashboard is the interactive menu loop.
type Dashboard struct {
	// Logger is the MANDATORY logger.
	Logger log.Interface

	// Progress is the MANDATORY writer for progress bars.
	Progress io.Writer

	// Prompter is the MANDATORY prompter.
	Prompter Prompter

	// Tour is the MANDATORY tour.
	Tour apitour.TourCLI
}

type menuItem struct {
	name   string
	action func(d *Dashboard, ctx context.Context) error
}

var menu = []menuItem{
	{"Check Weather", (*Dashboard).weather},
	{"Check Crypto Price", (*Dashboard).cryptoPrice},
	{"View Top 5 Cryptos", (*Dashboard).topCryptos},
	{"Quick Dashboard (Delhi + Bitcoin)", (*Dashboard).quick},
	{"Compare Cryptocurrencies", (*Dashboard).compare},
	{"Create a Post (POST request)", (*Dashboard).createPost},
	{"Air Quality (last 7 days)", (*Dashboard).airQuality},
	{"Search Movies", (*Dashboard).searchMovies},
	{"Movie Details", (*Dashboard).movieDetails},
	{"Look up User Info", (*Dashboard).userInfo},
	{"Search Posts by User", (*Dashboard).userPosts},
	{"View a Post", (*Dashboard).post},
	{"View Comments for a Post", (*Dashboard).comments},
	{"View User TODOs", (*Dashboard).todos},
}

func menuNames() []string {
	out := make([]string, 0, len(menu)+1)
	for _, item := range menu {
		out = append(out, item.name)
	}
	return append(out, exitItem)
}

// Run shows the menu until the user exits, interrupts the prompt or
// the context is done. Lookup failures are reported and the loop goes on.
func (d *Dashboard) Run(ctx context.Context) error {
	output.SectionTitle(d.Logger, "Real-World API Dashboard "+time.Now().Format("2006-01-02 15:04:05"))
	names := menuNames()
	for ctx.Err() == nil {
		choice, err := d.Prompter.Select("Options:", names)
		if err != nil {
			return d.stop(err)
		}
		if choice == exitItem {
			break
		}
		for _, item := range menu {
			if item.name != choice {
				continue
			}
			if err := item.action(d, ctx); err != nil {
				return d.stop(err)
			}
		}
	}
	d.Logger.Info("Goodbye! Happy coding!")
	return nil
}

// stop converts the prompt errors meaning "the user is done" to nil.
func (d *Dashboard) stop(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		d.Logger.Info("Goodbye! Happy coding!")
		return nil
	}
	return err
}

func (d *Dashboard) ask(message string, available []string) (string, error) {
	var help string
	if len(available) > 0 {
		help = "Available: " + strings.Join(available, ", ")
		d.Logger.Info(help)
	}
	return d.Prompter.Input(message, help)
}

func (d *Dashboard) weather(ctx context.Context) error {
	city, err := d.ask("Enter city name:", d.Tour.Tables().CityNames())
	if err != nil {
		return err
	}
	weather.Show(ctx, d.Tour, d.Logger, city)
	return nil
}

func (d *Dashboard) cryptoPrice(ctx context.Context) error {
	coin, err := d.ask("Enter crypto name:", d.Tour.Tables().CoinNames())
	if err != nil {
		return err
	}
	crypto.Price(ctx, d.Tour, d.Logger, coin)
	return nil
}

func (d *Dashboard) topCryptos(ctx context.Context) error {
	crypto.Top(ctx, d.Tour, d.Logger, 5)
	return nil
}

func (d *Dashboard) quick(ctx context.Context) error {
	weather.Show(ctx, d.Tour, d.Logger, "delhi")
	crypto.Price(ctx, d.Tour, d.Logger, "bitcoin")
	return nil
}

func (d *Dashboard) compare(ctx context.Context) error {
	crypto.Compare(ctx, d.Tour, d.Logger, d.Progress)
	return nil
}

func (d *Dashboard) createPost(ctx context.Context) error {
	title, err := d.Prompter.Input("Enter post title:", "")
	if err != nil {
		return err
	}
	body, err := d.Prompter.Input("Enter post content:", "")
	if err != nil {
		return err
	}
	posts.Create(ctx, d.Tour, d.Logger, &placeholder.NewPost{Title: title, Body: body, UserID: 1})
	return nil
}

func (d *Dashboard) airQuality(ctx context.Context) error {
	city, err := d.ask("Enter city name:", nil)
	if err != nil {
		return err
	}
	aqi.Show(ctx, d.Tour, d.Logger, city, time.Now())
	return nil
}

func (d *Dashboard) searchMovies(ctx context.Context) error {
	term, err := d.ask("Enter movie name:", nil)
	if err != nil {
		return err
	}
	movie.Search(ctx, d.Tour, d.Logger, term)
	return nil
}

func (d *Dashboard) movieDetails(ctx context.Context) error {
	title, err := d.ask("Enter movie name:", nil)
	if err != nil {
		return err
	}
	movie.Details(ctx, d.Tour, d.Logger, title)
	return nil
}

func (d *Dashboard) userInfo(ctx context.Context) error {
	id, err := d.ask("Enter user ID (1-10):", nil)
	if err != nil {
		return err
	}
	users.Show(ctx, d.Tour, d.Logger, id)
	return nil
}

func (d *Dashboard) userPosts(ctx context.Context) error {
	id, err := d.ask("Enter user ID to see their posts (1-10):", nil)
	if err != nil {
		return err
	}
	posts.List(ctx, d.Tour, d.Logger, id)
	return nil
}

func (d *Dashboard) post(ctx context.Context) error {
	id, err := d.ask("Enter post ID (1-100):", nil)
	if err != nil {
		return err
	}
	posts.Show(ctx, d.Tour, d.Logger, id)
	return nil
}

func (d *Dashboard) comments(ctx context.Context) error {
	id, err := d.ask("Enter post ID (1-100):", nil)
	if err != nil {
		return err
	}
	posts.Comments(ctx, d.Tour, d.Logger, id)
	return nil
}

func (d *Dashboard) todos(ctx context.Context) error {
	id, err := d.ask("Enter user ID (1-10):", nil)
	if err != nil {
		return err
	}
	completed, err := d.Prompter.Input("Completed? (true/false, empty for all):", "")
	if err != nil {
		return err
	}
	todos.Show(ctx, d.Tour, d.Logger, id, completed)
	return nil
}
