package nextbus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/viktree/ttc-tracker/pkg/config"
)

// NewClientFromConfig builds a feed client from the loaded configuration.
func NewClientFromConfig(cfg config.FeedConfig) *Client {
	return &Client{
		Endpoint: cfg.Endpoint,
		Agency:   cfg.Agency,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout),
		},
	}
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "Look up TTC routes on the NextBus public XML feed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path of the config file",
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show a route with its stops and direction groupings",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "number",
						Usage:    "TTC route number",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					client := NewClientFromConfig(cfg.Feed)

					route, err := client.Route(context.Background(), c.Int("number"))
					if err != nil {
						return err
					}

					pretty.Println(route)

					return nil
				},
			},
			{
				Name:  "stops",
				Usage: "List the intersections served by a route",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "number",
						Usage:    "TTC route number",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					client := NewClientFromConfig(cfg.Feed)

					route, err := client.Route(context.Background(), c.Int("number"))
					if err != nil {
						return err
					}

					fmt.Printf("%s (%d stops)\n", route.Name, len(route.Stops))
					for _, stop := range route.Stops {
						fmt.Printf("  %s  %s\n", stop.Location, stop.Intersection)
					}

					return nil
				},
			},
		},
	}
}
