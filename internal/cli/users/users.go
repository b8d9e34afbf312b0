package users

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/apitour/apitour-cli/internal/placeholder"
)

func init() {
	cmd := root.Command("users", "Look up placeholder users")

	showCmd := cmd.Command("show", "Show a user")
	userID := showCmd.Arg("id", "User ID (1-10)").Required().String()
	showCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Show(root.Context(), tour, log.Log, *userID)
		return nil
	})
}

// Show prints the user whose numeric id is value.
func Show(ctx context.Context, tour apitour.TourCLI, logger log.Interface, value string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "users show", value)
	id := pipeline.Classify(placeholder.ParseID("user ID", value))
	if !inv.Check(id.Kind, id.Reason) {
		return id.Kind
	}

	client := placeholder.NewClient(tour.HTTPConfig(), tour.Config().Endpoints.Placeholder)
	res := pipeline.Classify(client.User(ctx, id.Value))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}
	user := res.Value.Value

	output.Fields(logger, "User #"+value+" Info", []output.Pair{
		output.P("Name", user.Name),
		output.P("Username", user.Username),
		output.P("Email", user.Email),
		output.P("Phone", user.Phone),
		output.P("Website", user.Website),
		output.P("City", user.Address.City),
		output.P("Company", user.Company.Name),
	})
	inv.Save("user", value, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}
