package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "tester"
	app.Version = "0.1.0"
	app.Usage = "drive terminal widgets through the tester dispatch core"

	app.Commands = []cli.Command{
		{
			Name:  "support",
			Usage: "list the interactions and locators each widget supports",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json",
					Usage: "print JSON instead of text",
				},
			},
			Action: supportAction,
		},
		{
			Name:      "run",
			Usage:     "run a JSON script against the demo form",
			ArgsUsage: "SCRIPT",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "load configuration from `FILE`",
				},
				cli.StringFlag{
					Name:  "report, r",
					Usage: "write the JSON report to `FILE`",
				},
			},
			Action: runAction,
		},
	}
	return app
}
