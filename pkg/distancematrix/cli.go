package distancematrix

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/viktree/ttc-tracker/pkg/config"
	"github.com/viktree/ttc-tracker/pkg/ttc"
)

// NewClientFromConfig builds a Distance Matrix client from the loaded
// configuration.
func NewClientFromConfig(cfg config.MapsConfig) *Client {
	return &Client{
		Endpoint: cfg.Endpoint,
		Key:      cfg.APIKey,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout),
		},
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "distance",
		Usage: "Transit travel time & distance between two points",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path of the config file",
			},
			&cli.StringFlag{
				Name:     "origin",
				Usage:    "Start point as lat,lon",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "destination",
				Usage:    "End point as lat,lon",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			origin, err := ttc.ParseLocation(c.String("origin"))
			if err != nil {
				return err
			}

			destination, err := ttc.ParseLocation(c.String("destination"))
			if err != nil {
				return err
			}

			client := NewClientFromConfig(cfg.Maps)

			result, err := client.Lookup(context.Background(), origin, destination)
			if err != nil {
				return err
			}

			fmt.Printf("%s away, %s by transit\n", result.Distance, result.Duration)

			return nil
		},
	}
}
