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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLicensify(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.go":             "package a\n",
		"done.go":          header + "package a\n",
		"sub/b.go":         "// Package b does things.\npackage b\n",
		"odd.go":           "//go:build ignore\n\npackage a\n",
		"_skip/c.go":       "package c\n",
		"README.md":        "not go\n",
		".hidden/d.go":     "package d\n",
		"sub/deeper/e.go":  "package e\n",
		"sub/deeper/x.txt": "package x\n",
	}
	for name, body := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	report := &bytes.Buffer{}
	err := licensify(root, report)
	if err != nil {
		t.Fatal(err)
	}

	for name, body := range files {
		got, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			t.Fatal(err)
		}
		want := body
		switch name {
		case "a.go", "sub/b.go", "sub/deeper/e.go":
			want = header + body
		}
		if string(got) != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
	}

	if !strings.Contains(report.String(), "ATTENTION "+filepath.Join(root, "odd.go")) {
		t.Errorf("odd.go not reported:\n%s", report.String())
	}

	// a second run does not change anything
	report.Reset()
	err = licensify(root, report)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(report.String(), "updating") {
		t.Errorf("second run updated files:\n%s", report.String())
	}
}
