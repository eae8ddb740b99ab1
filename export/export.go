// antimony-render - a volumetric rasteriser for implicit solids
// Copyright (C) 2026  Mike Estee
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

// Package export writes render.Image16 height fields to disk as raw,
// zstd-compressed 16-bit samples, for tooling that wants the unquantised
// depth data rather than an 8-bit preview image.
package export

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/mikest/antimony-render"
)

// rawMagic identifies the stream; ReadRaw16 rejects a stream that does not
// start with it. rawVersion is not written to the stream or checked on read.
const (
	rawMagic   = "ARHF" // antimony-render height field
	rawVersion = 1
)

// WriteRaw16 writes img to w as a zstd-compressed stream: an 8-byte header
// (the 4-byte magic, then width and height as big-endian uint16) followed
// by the row-major uint16 pixel data, little-endian.
func WriteRaw16(w io.Writer, img *render.Image16) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	defer enc.Close()

	var header [8]byte
	copy(header[0:4], rawMagic)
	binary.BigEndian.PutUint16(header[4:6], uint16(img.Width))
	binary.BigEndian.PutUint16(header[6:8], uint16(img.Height))
	if _, err := enc.Write(header[:]); err != nil {
		return err
	}

	buf := make([]byte, len(img.Pix)*2)
	for i, v := range img.Pix {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	_, err = enc.Write(buf)
	return err
}

// ReadRaw16 reads a stream written by WriteRaw16 and reconstructs the
// height field.
func ReadRaw16(r io.Reader) (*render.Image16, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var header [8]byte
	if _, err := io.ReadFull(dec, header[:]); err != nil {
		return nil, err
	}
	if string(header[0:4]) != rawMagic {
		return nil, errInvalidStream
	}
	width := int(binary.BigEndian.Uint16(header[4:6]))
	height := int(binary.BigEndian.Uint16(header[6:8]))

	buf := make([]byte, width*height*2)
	if _, err := io.ReadFull(dec, buf); err != nil {
		return nil, err
	}

	img := render.NewImage16(width, height)
	for i := range img.Pix {
		img.Pix[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	return img, nil
}
