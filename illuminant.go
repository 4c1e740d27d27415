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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
)

// Observer selects one of the CIE standard colorimetric observers.
// The zero value is the CIE 1931 2° observer.
type Observer int

// These are the supported standard observers.
const (
	Observer2  Observer = iota // CIE 1931, 2° field of view
	Observer10                 // CIE 1964, 10° field of view
)

func (o Observer) String() string {
	switch o {
	case Observer2:
		return "2"
	case Observer10:
		return "10"
	default:
		return "Observer(" + strconv.Itoa(int(o)) + ")"
	}
}

// ParseObserver converts an observer angle like "2" or "10" into an
// [Observer].  A trailing degree sign or "deg" is allowed.
func ParseObserver(s string) (Observer, error) {
	angle := strings.TrimSpace(s)
	angle = strings.TrimSuffix(angle, "°")
	angle = strings.TrimSuffix(angle, "deg")
	switch strings.TrimSpace(angle) {
	case "2":
		return Observer2, nil
	case "10":
		return Observer10, nil
	}
	return 0, &InvalidObserverError{Value: s}
}

// Observers returns the supported standard observers.
func Observers() []Observer {
	return []Observer{Observer2, Observer10}
}

// Illuminant is the name of a standard illuminant.  Names are not case
// sensitive.
type Illuminant string

// These are the illuminants with tabulated white points.
// Only the D series is available for the 10° observer.
const (
	A   Illuminant = "a"
	B   Illuminant = "b"
	C   Illuminant = "c"
	D50 Illuminant = "d50"
	D55 Illuminant = "d55"
	D65 Illuminant = "d65"
	D75 Illuminant = "d75"
	E   Illuminant = "e"
	F2  Illuminant = "f2"
	F7  Illuminant = "f7"
	F11 Illuminant = "f11"
)

// Normalize returns the canonical, case-folded form of the name.
func (il Illuminant) Normalize() Illuminant {
	return Illuminant(fold(strings.TrimSpace(string(il))))
}

func (il Illuminant) resolve(o Observer) (XYZ, error) {
	return LookupWhitePoint(o, il)
}

// LookupWhitePoint returns the reference white of an illuminant, as seen by
// the given observer.  The Y component of all tabulated white points is 1.
func LookupWhitePoint(o Observer, name Illuminant) (XYZ, error) {
	table, err := observerTable(o)
	if err != nil {
		return XYZ{}, err
	}
	wp, ok := table[name.Normalize()]
	if !ok {
		return XYZ{}, &UnknownIlluminantError{Observer: o, Name: string(name)}
	}
	return wp, nil
}

// Illuminants returns the names of all illuminants with a white point for
// the given observer, in sorted order.
func Illuminants(o Observer) ([]Illuminant, error) {
	table, err := observerTable(o)
	if err != nil {
		return nil, err
	}
	names := make([]Illuminant, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func observerTable(o Observer) (map[Illuminant]XYZ, error) {
	switch o {
	case Observer2:
		return whitePoints2, nil
	case Observer10:
		return whitePoints10, nil
	default:
		return nil, &InvalidObserverError{Value: o.String()}
	}
}

// fold maps a name to its case-folded form.
func fold(s string) string {
	return cases.Fold().String(s)
}

var whitePoints2 = map[Illuminant]XYZ{
	A:   {1.09850, 1.00000, 0.35585},
	B:   {0.99072, 1.00000, 0.85223},
	C:   {0.98074, 1.00000, 1.18232},
	D50: {0.96422, 1.00000, 0.82521},
	D55: {0.95682, 1.00000, 0.92149},
	D65: {0.95047, 1.00000, 1.08883},
	D75: {0.94972, 1.00000, 1.22638},
	E:   {1.00000, 1.00000, 1.00000},
	F2:  {0.99186, 1.00000, 0.67393},
	F7:  {0.95041, 1.00000, 1.08747},
	F11: {1.00962, 1.00000, 0.64350},
}

var whitePoints10 = map[Illuminant]XYZ{
	D50: {0.9672, 1.000, 0.8143},
	D55: {0.958, 1.000, 0.9093},
	D65: {0.9481, 1.000, 1.073},
	D75: {0.94416, 1.000, 1.2064},
}
