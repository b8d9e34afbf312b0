package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apitour/apitour-cli/internal/cli/root"
	"github.com/apitour/apitour-cli/internal/version"
)

// Run the app. This is the main app entry point
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	root.SetContext(ctx)
	defer root.Close()
	root.Cmd.Version(version.Version)
	_, err := root.Cmd.Parse(os.Args[1:])
	return err
}
