// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pngcodec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/psx"
)

// header holds the IHDR fields the decoder needs.
type header struct {
	width     int
	height    int
	bitDepth  uint8
	colorType uint8
	interlace uint8
}

// Decode decodes an 8-bit RGBA PNG into a tightly packed RGBA buffer.
func Decode(data []byte) (*psx.ImageData, error) {
	if len(data) < len(signature) || !bytes.Equal(data[:len(signature)], signature[:]) {
		return nil, ErrInvalidSignature
	}

	var (
		hdr     header
		seenHdr bool
		idat    bytes.Buffer
	)

	pos := len(signature)
scan:
	for pos < len(data) {
		if len(data)-pos < 12 {
			return nil, fmt.Errorf("%w: partial chunk header at offset %d", ErrTruncated, pos)
		}
		length := int64(binary.BigEndian.Uint32(data[pos : pos+4]))
		typ := data[pos+4 : pos+8]
		end := int64(pos) + 12 + length
		if end > int64(len(data)) {
			return nil, fmt.Errorf("%w: %s chunk needs %d bytes", ErrTruncated, typ, length)
		}
		body := data[pos+8 : pos+8+int(length)]
		want := binary.BigEndian.Uint32(data[pos+8+int(length) : end])
		if chunkCRC(typ, body) != want {
			return nil, fmt.Errorf("%w: %s", ErrChecksum, typ)
		}
		pos = int(end)

		switch string(typ) {
		case chunkIHDR:
			h, err := parseHeader(body)
			if err != nil {
				return nil, err
			}
			hdr, seenHdr = h, true
		case chunkIDAT:
			idat.Write(body)
		case chunkIEND:
			break scan
		}
	}

	if !seenHdr || hdr.width == 0 || hdr.height == 0 {
		return nil, ErrMissingIHDR
	}

	return inflateScanlines(idat.Bytes(), hdr)
}

// parseHeader validates an IHDR payload.
func parseHeader(body []byte) (header, error) {
	if len(body) != ihdrLength {
		return header{}, fmt.Errorf("%w: length %d", ErrInvalidHeader, len(body))
	}
	h := header{
		width:     int(binary.BigEndian.Uint32(body[0:4])),
		height:    int(binary.BigEndian.Uint32(body[4:8])),
		bitDepth:  body[8],
		colorType: body[9],
		interlace: body[12],
	}
	if h.bitDepth != bitDepth8 || h.colorType != colorTypeRGBA {
		return header{}, fmt.Errorf("%w: bit depth %d, color type %d (only 8-bit RGBA is supported)",
			ErrUnsupportedFormat, h.bitDepth, h.colorType)
	}
	if h.interlace != 0 {
		return header{}, fmt.Errorf("%w: interlaced images", ErrUnsupportedFormat)
	}
	if int64(h.width)*int64(h.height)*bytesPerPixel > maxImageBytes {
		return header{}, fmt.Errorf("%w: %dx%d exceeds size limit", ErrUnsupportedFormat, h.width, h.height)
	}
	return h, nil
}

// inflateScanlines decompresses the concatenated IDAT payload and reverses
// each scanline's filter. The output buffer is allocated only once the
// stream has produced every scanline the header declares.
func inflateScanlines(compressed []byte, hdr header) (*psx.ImageData, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, readError(err, 0)
	}
	defer func() { _ = zr.Close() }()

	stride := hdr.width * bytesPerPixel
	want := int64(hdr.height) * int64(stride+1)
	var raw bytes.Buffer
	if _, err := raw.ReadFrom(io.LimitReader(zr, want)); err != nil {
		return nil, readError(err, int(int64(raw.Len())/int64(stride+1)))
	}
	if int64(raw.Len()) < want {
		return nil, readError(io.ErrUnexpectedEOF, int(int64(raw.Len())/int64(stride+1)))
	}

	img := &psx.ImageData{
		Data:   make([]byte, hdr.width*hdr.height*bytesPerPixel),
		Width:  hdr.width,
		Height: hdr.height,
	}
	src := raw.Bytes()
	prev := make([]byte, stride)
	for y := range img.Height {
		line := src[y*(stride+1) : (y+1)*(stride+1)]
		cur := img.Data[y*stride : (y+1)*stride]
		copy(cur, line[1:])
		if err := unfilter(line[0], cur, prev, bytesPerPixel); err != nil {
			return nil, fmt.Errorf("%w: %d on row %d", err, line[0], y)
		}
		prev = cur
	}
	return img, nil
}

func readError(err error, row int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: image data ends at row %d", ErrTruncated, row)
	}
	return fmt.Errorf("%w: %w", ErrCorruptData, err)
}
