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

	"golang.org/x/image/math/f64"
)

// XYZ is a CIE 1931 tristimulus value.  Components are not clamped.
type XYZ f64.Vec3

// Matrix is a 3x3 matrix, stored in row-major order.
type Matrix f64.Mat3

// Identity is the 3x3 identity matrix.
var Identity = Matrix{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Mul returns the matrix product m·b.
func (m Matrix) Mul(b Matrix) Matrix {
	var c Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[3*i+j] = m[3*i]*b[j] + m[3*i+1]*b[3+j] + m[3*i+2]*b[6+j]
		}
	}
	return c
}

// Apply returns the matrix-vector product m·v.
func (m Matrix) Apply(v XYZ) XYZ {
	return XYZ{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m.
func (m Matrix) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m, computed from the cofactors.
// The second return value is false if m is singular.
func (m Matrix) Inverse() (Matrix, bool) {
	a := +(m[4]*m[8] - m[5]*m[7])
	b := -(m[3]*m[8] - m[5]*m[6])
	c := +(m[3]*m[7] - m[4]*m[6])

	d := -(m[1]*m[8] - m[2]*m[7])
	e := +(m[0]*m[8] - m[2]*m[6])
	f := -(m[0]*m[7] - m[1]*m[6])

	g := +(m[1]*m[5] - m[2]*m[4])
	h := -(m[0]*m[5] - m[2]*m[3])
	i := +(m[0]*m[4] - m[1]*m[3])

	det := m[0]*a + m[1]*b + m[2]*c
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}

	return Matrix{
		a / det, d / det, g / det,
		b / det, e / det, h / det,
		c / det, f / det, i / det,
	}, true
}

// PseudoInverse returns the Moore-Penrose pseudo-inverse of m.
//
// For a well conditioned matrix this is the ordinary inverse.  Otherwise the
// pseudo-inverse is computed from the eigen-decomposition of mᵀm, treating
// singular values below a relative threshold as zero.
func (m Matrix) PseudoInverse() Matrix {
	scale := m.frobenius()
	if scale == 0 {
		return Matrix{}
	}
	if math.Abs(m.Det()) > conditionLimit*scale*scale*scale {
		if inv, ok := m.Inverse(); ok {
			return inv
		}
	}

	mt := m.Transpose()
	lambda, v := symmetricEigen(mt.Mul(m))

	lambdaMax := math.Max(lambda[0], math.Max(lambda[1], lambda[2]))
	var dInv Matrix
	for k := 0; k < 3; k++ {
		if lambda[k] > rankThreshold*lambdaMax {
			dInv[4*k] = 1 / lambda[k]
		}
	}
	return v.Mul(dInv).Mul(v.Transpose()).Mul(mt)
}

func (m Matrix) frobenius() float64 {
	var sum float64
	for _, x := range m {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// symmetricEigen diagonalises the symmetric matrix a using cyclic Jacobi
// rotations.  It returns the eigenvalues and a matrix whose columns are the
// corresponding eigenvectors.
func symmetricEigen(a Matrix) (f64.Vec3, Matrix) {
	v := Identity
	for sweep := 0; sweep < maxJacobiSweeps; sweep++ {
		off := a[1]*a[1] + a[2]*a[2] + a[5]*a[5]
		diag := a[0]*a[0] + a[4]*a[4] + a[8]*a[8]
		if off <= 1e-32*diag {
			break
		}
		for _, pq := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
			p, q := pq[0], pq[1]
			apq := a[3*p+q]
			if apq == 0 {
				continue
			}
			theta := (a[3*q+q] - a[3*p+p]) / (2 * apq)
			t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
			if theta < 0 {
				t = -t
			}
			c := 1 / math.Sqrt(t*t+1)
			s := t * c

			rot := Identity
			rot[3*p+p] = c
			rot[3*q+q] = c
			rot[3*p+q] = s
			rot[3*q+p] = -s

			a = rot.Transpose().Mul(a).Mul(rot)
			a[3*p+q] = 0
			a[3*q+p] = 0
			v = v.Mul(rot)
		}
	}
	return f64.Vec3{a[0], a[4], a[8]}, v
}

const (
	// conditionLimit is the smallest value of |det(m)|/‖m‖³ for which
	// PseudoInverse uses the cofactor inverse.
	conditionLimit = 1e-10

	// rankThreshold is the relative size below which eigenvalues of mᵀm
	// are treated as zero.
	rankThreshold = 1e-12

	maxJacobiSweeps = 50
)
