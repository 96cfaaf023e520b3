package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/felixbrock/hello/internal/app"
	"github.com/felixbrock/hello/internal/components"
	"github.com/felixbrock/hello/internal/styles"
	"go.uber.org/automaxprocs/maxprocs"
)

func config() app.Config {
	cfg, err := app.LoadConfig(app.ConfigPath(os.Getenv))
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}

	return app.ApplyEnv(cfg, os.Getenv)
}

func main() {
	_, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		slog.Info(fmt.Sprintf(format, args...))
	}))
	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}

	config := config()

	sheet := styles.Greeting()
	if err := sheet.Validate(); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}

	componentBuilder := app.ComponentBuilder{
		Index:      components.Index,
		Greeting:   components.Greeting,
		Stylesheet: sheet.Stylesheet,
		Error:      components.Error,
	}

	a := app.New(config, componentBuilder, components.GreetingStylesheet)

	if err := a.Start(); err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		os.Exit(1)
	}
}
