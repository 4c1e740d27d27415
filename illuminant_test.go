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

package chroma

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupWhitePoint(t *testing.T) {
	cases := []struct {
		o    Observer
		name Illuminant
		want XYZ
	}{
		{Observer2, D65, XYZ{0.95047, 1.00000, 1.08883}},
		{Observer2, D50, XYZ{0.96422, 1.00000, 0.82521}},
		{Observer2, "F11", XYZ{1.00962, 1.00000, 0.64350}},
		{Observer10, D65, XYZ{0.9481, 1.000, 1.073}},
		{Observer10, " D75 ", XYZ{0.94416, 1.000, 1.2064}},
	}
	for _, c := range cases {
		got, err := LookupWhitePoint(c.o, c.name)
		if err != nil {
			t.Errorf("%s/%s: %v", c.o, c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s/%s: got %v, want %v", c.o, c.name, got, c.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := LookupWhitePoint(Observer2, "zz")
	var e1 *UnknownIlluminantError
	if !errors.As(err, &e1) {
		t.Fatalf("expected UnknownIlluminantError, got %v", err)
	}
	if e1.Name != "zz" || e1.Observer != Observer2 {
		t.Errorf("wrong error details: %+v", e1)
	}

	// illuminant A is only tabulated for the 2° observer
	_, err = LookupWhitePoint(Observer10, A)
	if !errors.As(err, &e1) {
		t.Fatalf("expected UnknownIlluminantError, got %v", err)
	}

	_, err = LookupWhitePoint(Observer(7), D65)
	var e2 *InvalidObserverError
	if !errors.As(err, &e2) {
		t.Fatalf("expected InvalidObserverError, got %v", err)
	}
}

func TestIlluminants(t *testing.T) {
	names2, err := Illuminants(Observer2)
	if err != nil {
		t.Fatal(err)
	}
	want2 := []Illuminant{A, B, C, D50, D55, D65, D75, E, F11, F2, F7}
	if d := cmp.Diff(want2, names2); d != "" {
		t.Errorf("2° illuminants (-want +got):\n%s", d)
	}

	names10, err := Illuminants(Observer10)
	if err != nil {
		t.Fatal(err)
	}
	want10 := []Illuminant{D50, D55, D65, D75}
	if d := cmp.Diff(want10, names10); d != "" {
		t.Errorf("10° illuminants (-want +got):\n%s", d)
	}

	// The 10° table is a subset of the 2° table.
	for _, name := range names10 {
		if _, err := LookupWhitePoint(Observer2, name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestParseObserver(t *testing.T) {
	good := map[string]Observer{
		"2":     Observer2,
		"10":    Observer10,
		"2°":    Observer2,
		" 10° ": Observer10,
		"10deg": Observer10,
	}
	for in, want := range good {
		got, err := ParseObserver(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
		} else if got != want {
			t.Errorf("%q: got %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"", "5", "two", "2.0"} {
		_, err := ParseObserver(in)
		var e *InvalidObserverError
		if !errors.As(err, &e) {
			t.Errorf("%q: expected InvalidObserverError, got %v", in, err)
		}
	}

	for _, o := range Observers() {
		o2, err := ParseObserver(o.String())
		if err != nil || o2 != o {
			t.Errorf("%s does not round-trip: %s, %v", o, o2, err)
		}
	}
}
