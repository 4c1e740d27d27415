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
)

// UnknownIlluminantError indicates that an illuminant name has no white
// point in the table for the given observer.
type UnknownIlluminantError struct {
	Observer Observer
	Name     string
}

func (err *UnknownIlluminantError) Error() string {
	return "unknown illuminant " + strconv.Quote(err.Name) +
		" for the " + err.Observer.String() + "° observer"
}

// UnknownModelError indicates that a chromatic adaptation model is not
// supported.
type UnknownModelError struct {
	Name string
}

func (err *UnknownModelError) Error() string {
	return "unknown chromatic adaptation model " + strconv.Quote(err.Name)
}

// InvalidObserverError indicates an observer angle other than 2° and 10°.
type InvalidObserverError struct {
	Value string
}

func (err *InvalidObserverError) Error() string {
	return "invalid observer angle " + strconv.Quote(err.Value)
}

// DegenerateWhitePointError indicates that the cone response of a source
// white point has a zero component, so that no adaptation to another white
// point exists.
type DegenerateWhitePointError struct {
	WhitePoint XYZ
	Component  int
}

func (err *DegenerateWhitePointError) Error() string {
	return "degenerate white point " + formatXYZ(err.WhitePoint) +
		": cone response " + strconv.Itoa(err.Component) + " is zero"
}

func formatXYZ(v XYZ) string {
	return "[" + strconv.FormatFloat(v[0], 'g', -1, 64) +
		" " + strconv.FormatFloat(v[1], 'g', -1, 64) +
		" " + strconv.FormatFloat(v[2], 'g', -1, 64) + "]"
}
