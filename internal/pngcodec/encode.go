// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pngcodec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/psx"
)

// CompressionLevel selects the deflate effort used for IDAT data.
// The values mirror image/png.
type CompressionLevel int

// Compression levels.
const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

func (l CompressionLevel) zlibLevel() int {
	switch l {
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

// Encoder configures PNG encoding. The zero value uses default compression.
type Encoder struct {
	CompressionLevel CompressionLevel
}

// Encode encodes img with default compression.
func Encode(img *psx.ImageData) ([]byte, error) {
	var e Encoder
	return e.Encode(img)
}

// Encode encodes img as an 8-bit RGBA PNG with every scanline using
// filter type 0. It fails with ErrSizeMismatch if len(img.Data) is not
// Width*Height*4, and with ErrInvalidDimensions for an empty image.
func (e *Encoder) Encode(img *psx.ImageData) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}
	if want := img.Width * img.Height * bytesPerPixel; len(img.Data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrSizeMismatch, len(img.Data), want, img.Width, img.Height)
	}

	var z bytes.Buffer
	zw, err := zlib.NewWriterLevel(&z, e.CompressionLevel.zlibLevel())
	if err != nil {
		return nil, fmt.Errorf("pngcodec: deflate: %w", err)
	}
	stride := img.Width * bytesPerPixel
	noneByte := []byte{filterNone}
	for y := range img.Height {
		if _, err := zw.Write(noneByte); err != nil {
			return nil, fmt.Errorf("pngcodec: deflate: %w", err)
		}
		if _, err := zw.Write(img.Data[y*stride : (y+1)*stride]); err != nil {
			return nil, fmt.Errorf("pngcodec: deflate: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("pngcodec: deflate: %w", err)
	}

	var ihdr [ihdrLength]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(img.Width))  //nolint:gosec // positive, checked above
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(img.Height)) //nolint:gosec // positive, checked above
	ihdr[8] = bitDepth8
	ihdr[9] = colorTypeRGBA
	ihdr[10] = 0 // compression: deflate
	ihdr[11] = 0 // filter method: adaptive
	ihdr[12] = 0 // interlace: none

	var out bytes.Buffer
	out.Grow(len(signature) + 3*12 + ihdrLength + z.Len())
	out.Write(signature[:])
	writeChunk(&out, chunkIHDR, ihdr[:])
	writeChunk(&out, chunkIDAT, z.Bytes())
	writeChunk(&out, chunkIEND, nil)
	return out.Bytes(), nil
}
