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

package float

import (
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0.964220000001, 6, "0.96422"},
		{1, 6, "1"},
		{100, 2, "100"},
		{-0.0000001, 4, "0"},
		{-1.26, 1, "-1.3"},
		{0.4, 0, "0"},
		{12.5, 3, "12.5"},
	}
	for _, c := range cases {
		got := Format(c.x, c.precision)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.precision, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(0.825209999, 4); got != 0.8252 {
		t.Errorf("Round = %g, want 0.8252", got)
	}
}

func TestJoin(t *testing.T) {
	got := Join([]float64{0.95047, 1, 1.08883}, 3, " ")
	if got != "0.95 1 1.089" {
		t.Errorf("Join = %q", got)
	}
}
