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
	"math"

	"github.com/sirupsen/logrus"
)

// WhitePoint is the reference white of a colour.  This is either an
// [Illuminant], which is looked up in the white point table for the observer
// in use, or a literal [XYZ] value.
type WhitePoint interface {
	resolve(o Observer) (XYZ, error)
}

func (v XYZ) resolve(Observer) (XYZ, error) {
	return v, nil
}

// ResolveWhitePoint returns the tristimulus values of a white point.
func ResolveWhitePoint(wp WhitePoint, o Observer) (XYZ, error) {
	if wp == nil {
		return XYZ{}, &UnknownIlluminantError{Observer: o}
	}
	return wp.resolve(o)
}

// Options control chromatic adaptation.
// The zero value selects the 2° observer and the Bradford model.
type Options struct {
	// Observer is used to look up named white points.
	Observer Observer

	// Model selects the cone response space.
	Model Model

	// Logger receives a debug message for each adaptation.
	// If this is nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

var defaultOptions = &Options{}

// AdaptationMatrix returns the matrix which maps XYZ values relative to the
// white point src to XYZ values relative to the white point dst.
//
// Named white points are looked up for observer o.  The returned matrix maps
// src to dst, up to rounding errors.
func AdaptationMatrix(src, dst WhitePoint, o Observer, m Model) (Matrix, error) {
	wpSrc, err := ResolveWhitePoint(src, o)
	if err != nil {
		return Matrix{}, err
	}
	wpDst, err := ResolveWhitePoint(dst, o)
	if err != nil {
		return Matrix{}, err
	}

	basis, err := m.Basis()
	if err != nil {
		return Matrix{}, err
	}

	return AdaptationMatrixFromBasis(wpSrc, wpDst, basis)
}

// AdaptationMatrixFromBasis returns the von Kries type adaptation matrix
// from white point src to white point dst, in the cone response space given
// by basis.  The result is B⁺·D·B, where B⁺ is the pseudo-inverse of the
// basis and D is the diagonal matrix of cone response ratios.
func AdaptationMatrixFromBasis(src, dst XYZ, basis Matrix) (Matrix, error) {
	rgbSrc := basis.Apply(src)
	rgbDst := basis.Apply(dst)

	var ratio Matrix
	for k := 0; k < 3; k++ {
		q := rgbDst[k] / rgbSrc[k]
		if rgbSrc[k] == 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return Matrix{}, &DegenerateWhitePointError{WhitePoint: src, Component: k}
		}
		ratio[4*k] = q
	}

	return basis.PseudoInverse().Mul(ratio).Mul(basis), nil
}

// Adapt converts the tristimulus value v, given relative to the white point
// src, into the corresponding value relative to the white point dst.
//
// If opt is nil, the 2° observer and the Bradford model are used.
func Adapt(v XYZ, src, dst WhitePoint, opt *Options) (XYZ, error) {
	if opt == nil {
		opt = defaultOptions
	}

	wpSrc, err := ResolveWhitePoint(src, opt.Observer)
	if err != nil {
		return XYZ{}, err
	}
	wpDst, err := ResolveWhitePoint(dst, opt.Observer)
	if err != nil {
		return XYZ{}, err
	}

	m, err := AdaptationMatrix(wpSrc, wpDst, opt.Observer, opt.Model)
	if err != nil {
		return XYZ{}, err
	}

	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithField("model", opt.Model.String()).Debug("applying chromatic adaptation")

	return m.Apply(v), nil
}
