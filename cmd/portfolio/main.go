package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/jakoblorz/go-portfolio/internal/cli"
)

func main() {
	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cli.LogLevel,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(logHandler))

	if err := cli.Execute(); err != nil {
		slog.Error("exiting with an error", "error", err)
		os.Exit(1)
	}
}
