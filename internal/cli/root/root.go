package root

import (
	"context"
	"os"
	"sync"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/log/handlers/cli"
	"github.com/apitour/apitour-cli/internal/utils"
	"github.com/apitour/apitour-cli/internal/version"
)

// Cmd is the root command
var Cmd = kingpin.New("apitour", "A tour of public REST APIs from the command line.")

// Command is syntax sugar for defining sub-commands
var Command = Cmd.Command

// Init should be called by all subcommand that care to have a apitour.Tour instance
var Init func() (*apitour.Tour, error)

var (
	mu      sync.Mutex
	rootctx = context.Background()
	opened  *apitour.Tour
)

// SetContext sets the context used by every command.
func SetContext(ctx context.Context) {
	mu.Lock()
	defer mu.Unlock()
	rootctx = ctx
}

// Context returns the context used by every command.
func Context() context.Context {
	mu.Lock()
	defer mu.Unlock()
	return rootctx
}

// Close closes the tour, if it has been initialized.
func Close() error {
	mu.Lock()
	tour := opened
	opened = nil
	mu.Unlock()
	if tour == nil {
		return nil
	}
	return tour.Close()
}

func init() {
	configPath := Cmd.Flag("config", "Set a custom config file path").Short('c').String()
	homePath := Cmd.Flag("home", "Set a custom apitour home").Envar(utils.HomeEnv).String()
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()
	timeout := Cmd.Flag("timeout", "Override the per-request timeout (e.g. 5s)").Duration()
	noSave := Cmd.Flag("no-save", "Do not write JSON snapshots").Bool()
	logHandler := Cmd.Flag("log-handler", "Set the desired log handler (one of: batch, cli)").Default("cli").Enum("batch", "cli")

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		switch *logHandler {
		case "batch":
			log.SetHandler(json.New(os.Stdout))
		default:
			log.SetHandler(cli.Default)
		}
		if *verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("apitour version %s", version.Version)
		}

		var (
			once sync.Once
			tour *apitour.Tour
			err  error
		)
		Init = func() (*apitour.Tour, error) {
			once.Do(func() {
				home := *homePath
				if home == "" {
					if home, err = utils.GetHome(); err != nil {
						return
					}
				}
				tour = apitour.NewTour(*configPath, home)
				tour.SetTimeout(*timeout)
				tour.SetSaveSnapshots(!*noSave)
				if err = tour.Init(apitour.DefaultSoftwareName, version.Version); err != nil {
					tour.Close()
					tour = nil
					return
				}
				mu.Lock()
				opened = tour
				mu.Unlock()
			})
			return tour, err
		}

		return nil
	})
}

// NewTourCLI is like Init but returns a apitour.TourCLI instead.
func NewTourCLI() (apitour.TourCLI, error) {
	tour, err := Init()
	if err != nil {
		log.WithError(err).Error("failed to initialize root context")
		return nil, err
	}
	return tour, nil
}
