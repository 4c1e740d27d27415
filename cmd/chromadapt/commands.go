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

package main

import (
	"fmt"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v2"

	"seehuhn.de/go/chroma"
	"seehuhn.de/go/chroma/internal/float"
	"seehuhn.de/go/chroma/profile"
)

func adaptCommand(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "adapt",
		Usage:     "convert an XYZ colour to a different white point",
		ArgsUsage: "X Y Z",
		Flags:     whitePointFlags(),
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 3 {
				return fmt.Errorf("expected 3 arguments, got %d", c.Args().Len())
			}
			var v chroma.XYZ
			for i, arg := range c.Args().Slice() {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid tristimulus value %q", arg)
				}
				v[i] = x
			}

			src, dst, err := s.whitePoints(c)
			if err != nil {
				return err
			}
			res, err := chroma.Adapt(v, src, dst, s.options())
			if err != nil {
				return err
			}
			s.printXYZ(c, res)
			return nil
		},
	}
}

func matrixCommand(s *settings) *cli.Command {
	return &cli.Command{
		Name:  "matrix",
		Usage: "print the adaptation matrix between two white points",
		Flags: whitePointFlags(),
		Action: func(c *cli.Context) error {
			src, dst, err := s.whitePoints(c)
			if err != nil {
				return err
			}
			m, err := chroma.AdaptationMatrix(src, dst, s.observer, s.model)
			if err != nil {
				return err
			}
			for i := 0; i < 3; i++ {
				fmt.Fprintln(c.App.Writer, float.Join(m[3*i:3*i+3], s.precision, " "))
			}
			return nil
		},
	}
}

func illuminantsCommand(s *settings) *cli.Command {
	return &cli.Command{
		Name:  "illuminants",
		Usage: "list the known white points for the selected observer",
		Action: func(c *cli.Context) error {
			names, err := chroma.Illuminants(s.observer)
			if err != nil {
				return err
			}
			for _, name := range names {
				wp, err := chroma.LookupWhitePoint(s.observer, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%-4s %s\n", name, float.Join(wp[:], s.precision, " "))
			}
			return nil
		},
	}
}

func profileCommand(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "show the white points of an ICC profile",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected 1 argument, got %d", c.Args().Len())
			}
			data, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}
			wp, err := profile.Decode(data)
			if err != nil {
				return err
			}

			w := c.App.Writer
			fmt.Fprintln(w, "illuminant:", float.Join(wp.Illuminant[:], s.precision, " "))
			fmt.Fprintln(w, "media:     ", float.Join(wp.Media[:], s.precision, " "))
			toPCS, err := wp.ToPCS(s.model)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "to PCS (%s):\n", s.model)
			for i := 0; i < 3; i++ {
				fmt.Fprintln(w, "  "+float.Join(toPCS[3*i:3*i+3], s.precision, " "))
			}
			if wp.Adaptation != nil {
				fmt.Fprintln(w, "chad:")
				for i := 0; i < 3; i++ {
					fmt.Fprintln(w, "  "+float.Join(wp.Adaptation[3*i:3*i+3], s.precision, " "))
				}
			}
			return nil
		},
	}
}

func (s *settings) printXYZ(c *cli.Context, v chroma.XYZ) {
	w := c.App.Writer
	if s.labelled {
		fmt.Fprintf(w, "X=%s Y=%s Z=%s\n",
			float.Format(v[0], s.precision),
			float.Format(v[1], s.precision),
			float.Format(v[2], s.precision))
		return
	}
	fmt.Fprintln(w, float.Join(v[:], s.precision, " "))
}
