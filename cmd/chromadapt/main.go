// seehuhn.de/go/chroma - chromatic adaptation of CIE XYZ colours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Chromadapt converts CIE XYZ colours between reference white points.
//
// Usage:
//
//	chromadapt [global options] adapt --from d65 --to d50 X Y Z
//	chromadapt [global options] matrix --from d65 --to d50
//	chromadapt [global options] illuminants
//	chromadapt [global options] profile file.icc
//
// White points are given either as illuminant names or as three
// comma-separated numbers.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"seehuhn.de/go/chroma"
	"seehuhn.de/go/chroma/config"
	"seehuhn.de/go/chroma/internal/buildinfo"
)

func main() {
	labelled := term.IsTerminal(int(os.Stdout.Fd()))
	app := newApp(os.Stdout, os.Stderr, labelled)

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chromadapt:", err)
		os.Exit(1)
	}
}

// settings collects the global options, after merging the command line
// flags with the configuration file.
type settings struct {
	cfg       *config.Config
	observer  chroma.Observer
	model     chroma.Model
	precision int
	labelled  bool
	logger    *logrus.Logger
}

func newApp(stdout, stderr io.Writer, labelled bool) *cli.App {
	s := &settings{labelled: labelled}

	app := &cli.App{
		Name:      "chromadapt",
		Usage:     "chromatic adaptation of CIE XYZ colours",
		Version:   buildinfo.Version(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read defaults and custom illuminants from `FILE`",
				EnvVars: []string{"CHROMADAPT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "observer",
				Usage: "standard observer used to look up illuminants: [2 | 10]",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "adaptation model: [bradford | von_kries | xyz_scaling]",
			},
			&cli.IntFlag{
				Name:  "precision",
				Usage: "number of digits after the decimal point",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print diagnostic messages",
			},
		},
		Before: func(c *cli.Context) error {
			return s.setup(c)
		},
		Commands: []*cli.Command{
			adaptCommand(s),
			matrixCommand(s),
			illuminantsCommand(s),
			profileCommand(s),
		},
	}
	return app
}

// setup fills s from the configuration file and the global flags.
// Flags take precedence over the configuration file.
func (s *settings) setup(c *cli.Context) error {
	s.logger = logrus.New()
	s.logger.SetOutput(c.App.ErrWriter)
	if c.Bool("verbose") {
		s.logger.SetLevel(logrus.DebugLevel)
	}

	s.cfg = config.Default()
	if fname := c.String("config"); fname != "" {
		cfg, err := config.Load(fname)
		if err != nil {
			return err
		}
		s.cfg = cfg
		s.logger.WithField("file", fname).Debug("loaded configuration")
	}

	s.observer = s.cfg.Observer()
	if c.IsSet("observer") {
		o, err := chroma.ParseObserver(c.String("observer"))
		if err != nil {
			return err
		}
		s.observer = o
	}

	s.model = s.cfg.Model()
	if c.IsSet("model") {
		m, err := chroma.ParseModel(c.String("model"))
		if err != nil {
			return err
		}
		s.model = m
	}

	s.precision = s.cfg.Defaults.Precision
	if c.IsSet("precision") {
		s.precision = c.Int("precision")
		if s.precision < 0 || s.precision > 17 {
			return fmt.Errorf("invalid precision %d", s.precision)
		}
	}
	return nil
}

func (s *settings) options() *chroma.Options {
	return &chroma.Options{
		Observer: s.observer,
		Model:    s.model,
		Logger:   s.logger,
	}
}

// whitePoints resolves the --from and --to flags of a command.
func (s *settings) whitePoints(c *cli.Context) (src, dst chroma.WhitePoint, err error) {
	src, err = s.cfg.WhitePoint(c.String("from"))
	if err != nil {
		return nil, nil, fmt.Errorf("--from: %w", err)
	}
	dst, err = s.cfg.WhitePoint(c.String("to"))
	if err != nil {
		return nil, nil, fmt.Errorf("--to: %w", err)
	}
	return src, dst, nil
}

func whitePointFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "source white point (illuminant name or X,Y,Z)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "destination white point (illuminant name or X,Y,Z)",
			Required: true,
		},
	}
}
