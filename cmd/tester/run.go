package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/bjaus/tester"
	"github.com/bjaus/tester/internal/config"
	"github.com/bjaus/tester/script"
	"github.com/bjaus/tester/term"
	"github.com/bjaus/tester/term/termtest"
)

// demoForm builds the form scripts run against:
//
//	form
//	  increment  button adding one to count
//	  count      label
//	  name       text field, id "name-field"
//	  letters    radio grid of "a" to "j" over four columns
//	  volume     range field over [0, 10]
//	  agree      check box
func demoForm() *term.Group {
	count := term.NewLabel("count", "0")
	n := 0
	increment := term.NewButton("increment", "+1", func() {
		n++
		count.SetText(strconv.Itoa(n))
	})

	name := term.NewTextField("name", 0)
	name.SetID("name-field")

	letters := term.NewRadioGrid("letters",
		[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, 4)

	volume := term.NewRangeField("volume", 0, 10)
	volume.SetID("volume")

	agree := term.NewCheckBox("agree", "I agree")

	return term.NewGroup("form", "Demo", increment, count, name, letters, volume, agree)
}

// runScript runs raw against a fresh demo form and writes the report to
// out. The report is written even when a step fails.
func runScript(settings *config.Settings, logger *log.Logger, raw []byte, out io.Writer) error {
	screen, err := term.NewScreen(settings.ScreenWidth, settings.ScreenHeight)
	if err != nil {
		return err
	}
	defer screen.Close()

	form := demoForm()
	screen.Add(form)

	opts := append(settings.Options(),
		tester.WithBuiltinRegistries(termtest.Registries()...),
		tester.WithEventProcessor(screen.ProcessEvents),
		tester.LogHooks(logger),
	)
	root := tester.NewTester(opts...).Wrap(form)

	report, runErr := script.Run(root, raw)
	if report != nil {
		rendered, err := report.JSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, string(rendered)); err != nil {
			return errors.Wrap(err, "write report")
		}
		logger.WithField("steps", len(report.Results)).Info("script finished")
	}
	return runErr
}

func runAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: tester run [--config FILE] SCRIPT", 2)
	}

	settings, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	logger := settings.Logger()

	raw, err := os.ReadFile(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "read script")
	}

	out := c.App.Writer
	if path := c.String("report"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create report")
		}
		defer f.Close()
		out = f
	}

	if err := runScript(settings, logger, raw, out); err != nil {
		logger.WithError(err).Error("script failed")
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
