package main

import (
	"github.com/joho/godotenv"
	"github.com/orgball2608/nitter-relay-telegram-bot/internal/app"
	"github.com/orgball2608/nitter-relay-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	// A local .env is a convenience for development; in CI the variables
	// come from the environment directly.
	_ = godotenv.Load()

	log := logger.New(logger.Opts{})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	// Runs the single relay pass; the app shuts itself down when done.
	application.Run()
}
