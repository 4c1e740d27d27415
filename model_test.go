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
)

func TestParseModel(t *testing.T) {
	for _, m := range Models() {
		got, err := ParseModel(m.String())
		if err != nil {
			t.Errorf("%s: %v", m, err)
		} else if got != m {
			t.Errorf("%s: parsed as %s", m, got)
		}
	}

	got, err := ParseModel("Von_Kries")
	if err != nil || got != VonKries {
		t.Errorf("Von_Kries: got %s, %v", got, err)
	}

	_, err = ParseModel("foo")
	var e *UnknownModelError
	if !errors.As(err, &e) {
		t.Fatalf("expected UnknownModelError, got %v", err)
	}
	if e.Name != "foo" {
		t.Errorf("wrong model name in error: %q", e.Name)
	}
}

func TestBasis(t *testing.T) {
	b, err := Bradford.Basis()
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0.8951 || b[4] != 1.7135 || b[8] != 1.0296 {
		t.Errorf("wrong Bradford matrix: %v", b)
	}

	b, err = XYZScaling.Basis()
	if err != nil {
		t.Fatal(err)
	}
	if b != Identity {
		t.Errorf("XYZ scaling basis is not the identity: %v", b)
	}

	_, err = Model(42).Basis()
	var e *UnknownModelError
	if !errors.As(err, &e) {
		t.Errorf("expected UnknownModelError, got %v", err)
	}
}

func TestDefaultModel(t *testing.T) {
	var opt Options
	if opt.Model != Bradford {
		t.Errorf("default model is %s", opt.Model)
	}
	if opt.Observer != Observer2 {
		t.Errorf("default observer is %s", opt.Observer)
	}
}
