package main

import (
	"github.com/apex/log"
	"github.com/apitour/apitour-cli/internal/cli/app"
	_ "github.com/apitour/apitour-cli/internal/cli/aqi"
	_ "github.com/apitour/apitour-cli/internal/cli/crypto"
	_ "github.com/apitour/apitour-cli/internal/cli/dashboard"
	_ "github.com/apitour/apitour-cli/internal/cli/history"
	_ "github.com/apitour/apitour-cli/internal/cli/movie"
	_ "github.com/apitour/apitour-cli/internal/cli/posts"
	_ "github.com/apitour/apitour-cli/internal/cli/reset"
	_ "github.com/apitour/apitour-cli/internal/cli/todos"
	_ "github.com/apitour/apitour-cli/internal/cli/users"
	_ "github.com/apitour/apitour-cli/internal/cli/version"
	_ "github.com/apitour/apitour-cli/internal/cli/weather"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("main exit")
	}
}
