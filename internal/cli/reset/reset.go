package reset

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
)

func init() {
	cmd := root.Command("reset", "Delete the apitour home, its history and its snapshots")
	force := cmd.Flag("force", "Force deleting the apitour home").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		return doreset(log.Log, tour, *force)
	})
}

func doreset(logger log.Interface, tour apitour.TourCLI, force bool) error {
	if !force {
		logger.Infof("Run with --force to delete %s", tour.Home())
		return nil
	}
	// We need to close the DB first otherwise it would be rewritten
	// on close after we delete the home directory.
	if sess := tour.DB(); sess != nil {
		if err := sess.Close(); err != nil {
			logger.WithError(err).Error("failed to close the DB")
			return err
		}
	}
	if err := os.RemoveAll(tour.Home()); err != nil {
		logger.WithError(err).Error("failed to delete the apitour home")
		return err
	}
	logger.Infof("Deleted %s", tour.Home())
	return nil
}
