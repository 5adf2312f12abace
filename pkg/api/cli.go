package api

import (
	"github.com/urfave/cli/v2"

	"github.com/viktree/ttc-tracker/pkg/config"
	"github.com/viktree/ttc-tracker/pkg/distancematrix"
	"github.com/viktree/ttc-tracker/pkg/nextbus"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the route metadata web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path of the config file",
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					listen := c.String("listen")
					if listen == "" {
						listen = cfg.Server.Listen
					}

					server := NewServer(
						nextbus.NewClientFromConfig(cfg.Feed),
						distancematrix.NewClientFromConfig(cfg.Maps),
					)

					return server.Listen(listen)
				},
			},
		},
	}
}
