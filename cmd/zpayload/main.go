package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpayload/internal/cli"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpayload"))

	_, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	slog.Debug("starting", "version", version, "out", cli.OutputPath)

	styled := term.IsTerminal(int(os.Stderr.Fd()))

	s, err := cli.Run(cli.OutputPath)
	if err != nil {
		slog.Error("generate", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	cli.PrintSummary(os.Stderr, s, styled)

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}
