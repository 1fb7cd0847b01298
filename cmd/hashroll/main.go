/*
hashroll is a command-line front end to the chunkers of the hashroll packages. It splits files into
content defined chunks and reports on the chunks produced, as a demonstration of usage but supposed
to be functional in itself.
*/
package main

import (
	"os"

	"github.com/Redundancy/hashroll/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var app *cli.App = cli.NewApp()

var log = logger.GetLogger("hashroll")

func init() {
	app.Name = "hashroll"
	app.Usage = "Split, measure and compare content defined chunks"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "one of panic, fatal, error, warn, info, debug or trace",
		},
	}

	app.Before = func(c *cli.Context) error {
		lvl, err := logrus.ParseLevel(c.String("log-level"))
		if err != nil {
			return err
		}

		logger.SetLogLevel(lvl)
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
