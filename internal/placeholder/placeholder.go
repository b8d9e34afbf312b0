// Package placeholder talks to the jsonplaceholder fake REST API.
package placeholder

import (
	"context"
	"strconv"
	"strings"

	"github.com/apitour/apitour-cli/internal/httpclientx"
	"github.com/apitour/apitour-cli/internal/pipeline"
	"github.com/pkg/errors"
)

// DefaultURL is the default API base URL.
const DefaultURL = "https://jsonplaceholder.typicode.com"

// User is a user.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Address  struct {
		City string `json:"city"`
	} `json:"address"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
}

// Post is a post.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment is a comment to a post.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Todo is a todo item.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewPost is the body of [*Client.CreatePost].
type NewPost struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// Resource is a decoded resource along with its untyped body.
type Resource[T any] struct {
	Value T
	Raw   any
}

// ParseID parses a numeric identifier entered by the user.
func ParseID(what, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, pipeline.NewInputError(what + " cannot be empty")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, pipeline.NewInputError(what + " must be a number")
		}
	}
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, pipeline.NewInputError(what + " must be a positive number")
	}
	return id, nil
}

// ParseCompleted parses the optional completed filter of [*Client.Todos].
func ParseCompleted(value string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, pipeline.NewInputError("completed must be true or false")
	}
}

// Client talks to the placeholder API.
type Client struct {
	// Config is the MANDATORY HTTP config.
	Config *httpclientx.Config

	// URL is the MANDATORY base URL.
	URL string
}

// NewClient creates a new [*Client] using [DefaultURL] when URL is empty.
func NewClient(config *httpclientx.Config, URL string) *Client {
	if URL == "" {
		URL = DefaultURL
	}
	return &Client{Config: config, URL: strings.TrimRight(URL, "/")}
}

func (c *Client) endpoint(segments ...string) *httpclientx.Endpoint {
	return httpclientx.NewEndpoint(c.URL).WithPath(segments...)
}

// User returns the user with the given id.
func (c *Client) User(ctx context.Context, id int) (*Resource[*User], error) {
	doc, err := httpclientx.GetJSONDocument[*User](ctx, c.endpoint("users", strconv.Itoa(id)), c.Config)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching user %d", id)
	}
	if doc.Value.ID == 0 {
		return nil, pipeline.NewMiss("user " + strconv.Itoa(id) + " not found")
	}
	return &Resource[*User]{Value: doc.Value, Raw: doc.Raw}, nil
}

// Post returns the post with the given id.
func (c *Client) Post(ctx context.Context, id int) (*Resource[*Post], error) {
	doc, err := httpclientx.GetJSONDocument[*Post](ctx, c.endpoint("posts", strconv.Itoa(id)), c.Config)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching post %d", id)
	}
	if doc.Value.ID == 0 {
		return nil, pipeline.NewMiss("post " + strconv.Itoa(id) + " not found")
	}
	return &Resource[*Post]{Value: doc.Value, Raw: doc.Raw}, nil
}

// PostsByUser returns the posts written by the given user.
func (c *Client) PostsByUser(ctx context.Context, userID int) (*Resource[[]Post], error) {
	epnt := c.endpoint("posts").WithParam("userId", userID)
	return listOf[Post](ctx, c, epnt, "no posts found for this user")
}

// Comments returns the comments to the given post.
func (c *Client) Comments(ctx context.Context, postID int) (*Resource[[]Comment], error) {
	epnt := c.endpoint("posts", strconv.Itoa(postID), "comments")
	return listOf[Comment](ctx, c, epnt, "no comments found for this post")
}

// Todos returns the todos of the given user, optionally filtered by completion.
func (c *Client) Todos(ctx context.Context, userID int, completed *bool) (*Resource[[]Todo], error) {
	epnt := c.endpoint("todos").WithParam("userId", userID)
	if completed != nil {
		epnt = epnt.WithParam("completed", *completed)
	}
	return listOf[Todo](ctx, c, epnt, "no todos found for this user")
}

// CreatePost creates a new post. The API echoes the post with a new id.
func (c *Client) CreatePost(ctx context.Context, post *NewPost) (*Post, error) {
	if strings.TrimSpace(post.Title) == "" {
		return nil, pipeline.NewInputError("post title cannot be empty")
	}
	out, err := httpclientx.PostJSON[*NewPost, *Post](ctx, c.endpoint("posts"), c.Config, post)
	if err != nil {
		return nil, errors.Wrap(err, "creating post")
	}
	return out, nil
}

func listOf[T any](ctx context.Context, c *Client, epnt *httpclientx.Endpoint, miss string) (*Resource[[]T], error) {
	doc, err := httpclientx.GetJSONDocument[[]T](ctx, epnt, c.Config)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", epnt.URL)
	}
	if len(doc.Value) <= 0 {
		return nil, pipeline.NewMiss(miss)
	}
	return &Resource[[]T]{Value: doc.Value, Raw: doc.Raw}, nil
}
