package todos

import (
	"context"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/apitour/apitour-cli/internal/placeholder"
)

func init() {
	cmd := root.Command("todos", "List the todos of a user")
	userID := cmd.Arg("user-id", "User ID (1-10)").Required().String()
	completed := cmd.Flag("completed", "Only show todos with this status (true or false)").String()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Show(root.Context(), tour, log.Log, *userID, *completed)
		return nil
	})
}

var columns = []output.Column{
	{Title: "#", Width: 4, Right: true},
	{Title: "Status", Width: 8},
	{Title: "Title", Width: 60},
}

// Show prints the todos of the user whose numeric id is value. The
// completed filter is either empty, "true" or "false".
func Show(ctx context.Context, tour apitour.TourCLI, logger log.Interface, value, completed string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "todos", value)
	id := pipeline.Classify(placeholder.ParseID("user ID", value))
	if !inv.Check(id.Kind, id.Reason) {
		return id.Kind
	}
	filter := pipeline.Classify(placeholder.ParseCompleted(completed))
	if !inv.Check(filter.Kind, filter.Reason) {
		return filter.Kind
	}

	client := placeholder.NewClient(tour.HTTPConfig(), tour.Config().Endpoints.Placeholder)
	res := pipeline.Classify(client.Todos(ctx, id.Value, filter.Value))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}

	var (
		rows [][]string
		done int
	)
	for idx, todo := range res.Value.Value {
		status := "[ ]"
		if todo.Completed {
			status = "[x]"
			done++
		}
		rows = append(rows, []string{strconv.Itoa(idx + 1), status, todo.Title})
	}
	output.Grid(logger, "TODOs for User #"+value, columns, rows)
	logger.Infof("%d/%d completed", done, len(rows))
	inv.Save("todos", value, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}
