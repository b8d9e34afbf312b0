package history

import (
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/database"
	"github.com/apitour/apitour-cli/internal/humanize"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/snapshot"
	"github.com/apitour/apitour-cli/internal/utils"
	"github.com/pkg/errors"
)

// timeLayout is the layout of the history timestamps.
const timeLayout = "2006-01-02 15:04:05"

func init() {
	cmd := root.Command("history", "Show the recorded lookups")
	limit := cmd.Flag("limit", "Maximum number of lookups to show").Default("20").Int()

	listCmd := cmd.Command("list", "List the most recent lookups").Default()
	listCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		return list(tour, log.Log, *limit)
	})

	showCmd := cmd.Command("show", "Show a recorded lookup and its snapshot")
	id := showCmd.Arg("id", "Lookup ID").Required().Int64()
	showCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		return show(tour, log.Log, *id)
	})
}

var columns = []output.Column{
	{Title: "ID", Width: 5, Right: true},
	{Title: "Time", Width: 21},
	{Title: "Operation", Width: 16},
	{Title: "Target", Width: 20},
	{Title: "Outcome", Width: 18},
}

func list(tour apitour.TourCLI, logger log.Interface, limit int) error {
	lookups, err := database.ListLookups(tour.DB(), limit)
	if err != nil {
		logger.WithError(err).Error("failed to list lookups")
		return err
	}
	if len(lookups) <= 0 {
		logger.Info("no lookups recorded yet")
		return nil
	}
	var rows [][]string
	for _, l := range lookups {
		rows = append(rows, []string{
			strconv.FormatInt(l.ID, 10),
			l.StartTime.Local().Format(timeLayout),
			l.Operation,
			utils.Truncate(l.Target, 18),
			l.Outcome,
		})
	}
	output.Grid(logger, "Recent Lookups", columns, rows)
	return nil
}

func show(tour apitour.TourCLI, logger log.Interface, id int64) error {
	l, err := database.GetLookup(tour.DB(), id)
	if errors.Is(err, database.ErrNoSuchLookup) {
		logger.Warnf("lookup %d not found", id)
		return nil
	}
	if err != nil {
		logger.WithError(err).Error("failed to get lookup")
		return err
	}
	output.Fields(logger, "Lookup #"+strconv.FormatInt(l.ID, 10), []output.Pair{
		output.P("Session", l.SessionID),
		output.P("Time", l.StartTime.Local().Format(timeLayout)),
		output.P("Runtime", humanize.Fixed(l.Runtime, 3)+"s"),
		output.P("Operation", l.Operation),
		output.P("Target", l.Target),
		output.P("Outcome", l.Outcome),
		output.P("Reason", l.Reason),
		output.P("Snapshot", l.SnapshotPath),
	})
	if l.SnapshotPath == "" {
		return nil
	}
	value, err := snapshot.Load(l.SnapshotPath)
	if err != nil {
		logger.WithError(err).Warn("cannot load snapshot")
		return nil
	}
	output.JSON(logger, "Snapshot", value)
	return nil
}
