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

// Package profile reads the white points of ICC colour profiles.
//
// The profile connection space (PCS) of an ICC profile is relative to the
// PCS illuminant recorded in the profile header, which is D50 for all
// current versions of the ICC specification.  The media white point tag
// gives the white point of the device.  Colours can be moved between the
// two using [WhitePoints.ToPCS].
package profile

import (
	"bytes"
	"encoding/binary"
	"errors"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/chroma"
)

// MediaWhitePoint is the tag type of the media white point tag.
const MediaWhitePoint icc.TagType = 0x77747074 // "wtpt"

// WhitePoints holds the white point information of an ICC profile.
type WhitePoints struct {
	// Channels is the number of colour components of the data colour space.
	Channels int

	// Illuminant is the PCS illuminant from the profile header.
	Illuminant chroma.XYZ

	// Media is the media white point, from the "wtpt" tag.
	Media chroma.XYZ

	// Adaptation is the matrix from the "chad" tag, if present.
	// For version 4 profiles this maps the white point of the actual
	// viewing conditions to the PCS illuminant.
	Adaptation *chroma.Matrix
}

// Decode extracts the white points from the ICC profile data.
// The data is not modified.
func Decode(data []byte) (*WhitePoints, error) {
	// icc.Decode zeros some header fields while checking the profile ID.
	p, err := icc.Decode(bytes.Clone(data))
	if err != nil {
		return nil, &MalformedProfileError{Err: err}
	}

	res := &WhitePoints{
		Channels:   p.ColorSpace.NumComponents(),
		Illuminant: readXYZNumber(data[68:80]),
	}

	wtpt, ok := p.TagData[MediaWhitePoint]
	if !ok {
		return nil, ErrNoWhitePoint
	}
	if len(wtpt) < 20 || string(wtpt[:4]) != "XYZ " {
		return nil, &MalformedProfileError{Tag: MediaWhitePoint, Err: errors.New("not an XYZType")}
	}
	res.Media = readXYZNumber(wtpt[8:20])

	if chad, ok := p.TagData[icc.ChromaticAdaption]; ok {
		if len(chad) < 44 || string(chad[:4]) != "sf32" {
			return nil, &MalformedProfileError{Tag: icc.ChromaticAdaption, Err: errors.New("not an s15Fixed16ArrayType")}
		}
		var m chroma.Matrix
		for i := range m {
			m[i] = s15Fixed16(chad[8+4*i:])
		}
		res.Adaptation = &m
	}

	return res, nil
}

// ToPCS returns the matrix which adapts XYZ values relative to the media
// white point to XYZ values relative to the PCS illuminant.
func (wp *WhitePoints) ToPCS(m chroma.Model) (chroma.Matrix, error) {
	return chroma.AdaptationMatrix(wp.Media, wp.Illuminant, chroma.Observer2, m)
}

func readXYZNumber(buf []byte) chroma.XYZ {
	return chroma.XYZ{
		s15Fixed16(buf[0:]),
		s15Fixed16(buf[4:]),
		s15Fixed16(buf[8:]),
	}
}

func s15Fixed16(buf []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(buf))) / 65536
}

// ErrNoWhitePoint is returned by [Decode] if a profile has no media white
// point tag.
var ErrNoWhitePoint = errors.New("ICC profile has no media white point")

// MalformedProfileError indicates that an ICC profile could not be parsed.
type MalformedProfileError struct {
	Tag icc.TagType // zero if the error is not specific to a tag
	Err error
}

func (err *MalformedProfileError) Error() string {
	msg := "malformed ICC profile"
	if err.Tag != 0 {
		msg += " (tag " + err.Tag.String() + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedProfileError) Unwrap() error {
	return err.Err
}
