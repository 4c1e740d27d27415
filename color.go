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

// Target is a colour value which records the illuminant its tristimulus
// values are relative to.
type Target interface {
	XYZ() XYZ
	Illuminant() Illuminant
	Observer() Observer

	// SetXYZ replaces the tristimulus values together with the illuminant
	// they refer to.
	SetXYZ(v XYZ, il Illuminant)
}

// AdaptTarget converts the colour t to the illuminant named by target,
// using the named adaptation model.  Both names are case insensitive.
// If an error is returned, t is left unchanged.
func AdaptTarget(t Target, target, model string) error {
	dst := Illuminant(target).Normalize()
	m, err := ParseModel(model)
	if err != nil {
		return err
	}

	v, err := Adapt(t.XYZ(), t.Illuminant(), dst, &Options{
		Observer: t.Observer(),
		Model:    m,
	})
	if err != nil {
		return err
	}
	t.SetXYZ(v, dst)
	return nil
}

// Color is an XYZ colour together with its reference illuminant and
// observer.
type Color struct {
	X, Y, Z float64

	illuminant Illuminant
	observer   Observer
}

// NewColor returns a new colour.  The illuminant must have a white point
// for the given observer.
func NewColor(v XYZ, il Illuminant, o Observer) (*Color, error) {
	il = il.Normalize()
	if _, err := LookupWhitePoint(o, il); err != nil {
		return nil, err
	}
	return &Color{X: v[0], Y: v[1], Z: v[2], illuminant: il, observer: o}, nil
}

// XYZ implements the [Target] interface.
func (c *Color) XYZ() XYZ {
	return XYZ{c.X, c.Y, c.Z}
}

// Illuminant implements the [Target] interface.
func (c *Color) Illuminant() Illuminant {
	return c.illuminant
}

// Observer implements the [Target] interface.
func (c *Color) Observer() Observer {
	return c.observer
}

// SetXYZ implements the [Target] interface.
func (c *Color) SetXYZ(v XYZ, il Illuminant) {
	c.X, c.Y, c.Z = v[0], v[1], v[2]
	c.illuminant = il
}

// Adapt converts c in place to the given illuminant and returns c.
func (c *Color) Adapt(target, model string) (*Color, error) {
	err := AdaptTarget(c, target, model)
	if err != nil {
		return nil, err
	}
	return c, nil
}
