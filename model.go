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
)

// Model selects the cone response space in which chromatic adaptation is
// carried out.  The zero value is the Bradford model.
type Model int

// These are the supported chromatic adaptation models.
const (
	Bradford   Model = iota // Lam, 1985; the de facto standard
	VonKries                // Hunt-Pointer-Estevez cone fundamentals
	XYZScaling              // scaling in XYZ space, the identity basis
)

// Models returns all supported chromatic adaptation models.
func Models() []Model {
	return []Model{XYZScaling, Bradford, VonKries}
}

func (m Model) String() string {
	switch m {
	case Bradford:
		return "bradford"
	case VonKries:
		return "von_kries"
	case XYZScaling:
		return "xyz_scaling"
	default:
		return "Model(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseModel returns the model with the given name.  Recognised names are
// "bradford", "von_kries" and "xyz_scaling", in any case.
func ParseModel(name string) (Model, error) {
	switch fold(strings.TrimSpace(name)) {
	case "bradford":
		return Bradford, nil
	case "von_kries":
		return VonKries, nil
	case "xyz_scaling":
		return XYZScaling, nil
	}
	return 0, &UnknownModelError{Name: name}
}

// Basis returns the sharpening matrix of the model, which maps XYZ values
// to cone responses.
func (m Model) Basis() (Matrix, error) {
	switch m {
	case Bradford:
		return bradfordBasis, nil
	case VonKries:
		return vonKriesBasis, nil
	case XYZScaling:
		return Identity, nil
	default:
		return Matrix{}, &UnknownModelError{Name: m.String()}
	}
}

var (
	bradfordBasis = Matrix{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}

	vonKriesBasis = Matrix{
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0.00000, 0.00000, 0.91822,
	}
)
