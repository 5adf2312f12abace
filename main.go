package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/viktree/ttc-tracker/pkg/api"
	"github.com/viktree/ttc-tracker/pkg/distancematrix"
	"github.com/viktree/ttc-tracker/pkg/nextbus"
)

func main() {
	if os.Getenv("TTC_TRACKER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TTC_TRACKER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "ttc-tracker",
		Description: "Tracks TTC bus routes & stops using the NextBus public XML feed",

		Commands: []*cli.Command{
			nextbus.RegisterCLI(),
			distancematrix.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
