// Package posts contains the posts command and its subcommands.
package posts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/apitour"
	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/output"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/apitour/apitour-cli/internal/placeholder"
	"github.com/apitour/apitour-cli/internal/utils"
)

// commentWidth is the column at which comment bodies are wrapped.
const commentWidth = 72

func init() {
	cmd := root.Command("posts", "Read and create placeholder posts")

	listCmd := cmd.Command("list", "List the posts of a user")
	userID := listCmd.Arg("user-id", "User ID (1-10)").Required().String()
	listCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		List(root.Context(), tour, log.Log, *userID)
		return nil
	})

	showCmd := cmd.Command("show", "Show a single post")
	showID := showCmd.Arg("post-id", "Post ID (1-100)").Required().String()
	showCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Show(root.Context(), tour, log.Log, *showID)
		return nil
	})

	commentsCmd := cmd.Command("comments", "Show the comments to a post")
	postID := commentsCmd.Arg("post-id", "Post ID (1-100)").Required().String()
	commentsCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Comments(root.Context(), tour, log.Log, *postID)
		return nil
	})

	createCmd := cmd.Command("create", "Create a new post")
	post := &placeholder.NewPost{}
	createCmd.Flag("title", "Post title").Required().StringVar(&post.Title)
	createCmd.Flag("body", "Post content").StringVar(&post.Body)
	createCmd.Flag("user-id", "Author user ID").Default("1").IntVar(&post.UserID)
	createCmd.Action(func(_ *kingpin.ParseContext) error {
		tour, err := root.NewTourCLI()
		if err != nil {
			return err
		}
		Create(root.Context(), tour, log.Log, post)
		return nil
	})
}

func newClient(tour apitour.TourCLI) *placeholder.Client {
	return placeholder.NewClient(tour.HTTPConfig(), tour.Config().Endpoints.Placeholder)
}

var listColumns = []output.Column{
	{Title: "#", Width: 4, Right: true},
	{Title: "ID", Width: 5, Right: true},
	{Title: "Title", Width: 60},
}

// List prints the posts written by the user whose numeric id is value.
func List(ctx context.Context, tour apitour.TourCLI, logger log.Interface, value string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "posts list", value)
	id := pipeline.Classify(placeholder.ParseID("user ID", value))
	if !inv.Check(id.Kind, id.Reason) {
		return id.Kind
	}
	res := pipeline.Classify(newClient(tour).PostsByUser(ctx, id.Value))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}

	var rows [][]string
	for idx, p := range res.Value.Value {
		rows = append(rows, []string{
			strconv.Itoa(idx + 1),
			strconv.Itoa(p.ID),
			utils.Truncate(p.Title, 58),
		})
	}
	output.Grid(logger, "Posts by User #"+value, listColumns, rows)
	inv.Save("posts", value, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}

// Show prints the post whose numeric id is value.
func Show(ctx context.Context, tour apitour.TourCLI, logger log.Interface, value string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "posts show", value)
	id := pipeline.Classify(placeholder.ParseID("post ID", value))
	if !inv.Check(id.Kind, id.Reason) {
		return id.Kind
	}
	res := pipeline.Classify(newClient(tour).Post(ctx, id.Value))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}
	post := res.Value.Value

	output.Fields(logger, "Post #"+value, []output.Pair{
		output.P("Post ID", post.ID),
		output.P("User ID", post.UserID),
		output.P("Title", post.Title),
		output.P("Body", post.Body),
	})
	inv.Save("post", value, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}

// Comments prints the comments to the post whose numeric id is value.
func Comments(ctx context.Context, tour apitour.TourCLI, logger log.Interface, value string) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "posts comments", value)
	id := pipeline.Classify(placeholder.ParseID("post ID", value))
	if !inv.Check(id.Kind, id.Reason) {
		return id.Kind
	}
	res := pipeline.Classify(newClient(tour).Comments(ctx, id.Value))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}

	output.SectionTitle(logger, "Comments for Post #"+value)
	for idx, c := range res.Value.Value {
		title := fmt.Sprintf("%d. %s <%s>", idx+1, c.Name, c.Email)
		output.Paragraph(logger, title, c.Body, commentWidth)
	}
	inv.Save("comments", value, res.Value.Raw)
	inv.Done()
	return pipeline.KindSuccess
}

// Create creates post and prints the echoed post.
func Create(ctx context.Context, tour apitour.TourCLI, logger log.Interface, post *placeholder.NewPost) pipeline.Kind {
	inv := apitour.Begin(tour, logger, "posts create", post.Title)
	res := pipeline.Classify(newClient(tour).CreatePost(ctx, post))
	if !inv.Check(res.Kind, res.Reason) {
		return res.Kind
	}
	created := res.Value

	output.Fields(logger, "Post created successfully!", []output.Pair{
		output.P("Post ID", created.ID),
		output.P("Title", created.Title),
		output.P("Body", created.Body),
		output.P("User ID", created.UserID),
	})
	inv.Done()
	return pipeline.KindSuccess
}
