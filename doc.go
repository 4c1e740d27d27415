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

// Package chroma implements chromatic adaptation of CIE XYZ colours.
//
// A colour given by tristimulus values measured relative to one reference
// white (the source white point) is transformed into the tristimulus values
// which have the same appearance relative to a second reference white (the
// destination white point).  The transformation is linear: the white points
// are mapped into a cone response space (the sharpening basis of the
// adaptation [Model]), scaled channel by channel, and mapped back.
//
// White points can be given either by name, using one of the standard CIE
// illuminants like [D65] or [D50], or as literal [XYZ] values:
//
//	v := chroma.XYZ{0.4, 0.2, 0.1}
//	w, err := chroma.Adapt(v, chroma.D65, chroma.D50, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Named illuminants are resolved using the table for the standard observer
// given in [Options].  The default is the CIE 1931 2° observer together with
// the Bradford model.
//
// The function [AdaptationMatrix] returns the 3x3 matrix which implements
// an adaptation, for callers which need to apply the same transformation to
// many colours.  [Color] and [AdaptTarget] adapt colour values which record
// their own illuminant.
//
// All functions in this package are safe for concurrent use.
package chroma
