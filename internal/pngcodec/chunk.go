// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pngcodec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// signature is the 8-byte PNG file signature.
var signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Chunk types.
const (
	chunkIHDR = "IHDR"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
)

// IHDR constants for the only supported pixel layout.
const (
	bitDepth8     = 8
	colorTypeRGBA = 6
	bytesPerPixel = 4
	ihdrLength    = 13
)

// MaxPixels is the largest pixel count Decode accepts (16384x16384).
const MaxPixels = 1 << 28

// maxImageBytes bounds the decoded RGBA buffer.
const maxImageBytes = MaxPixels * bytesPerPixel

// writeChunk appends a length-prefixed chunk followed by the CRC-32 of
// its type and data.
func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data))) //nolint:gosec // chunk sizes are bounded by maxImageBytes
	copy(hdr[4:], typ)
	buf.Write(hdr[:])
	buf.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], chunkCRC(hdr[4:], data))
	buf.Write(sum[:])
}

// chunkCRC computes the CRC-32 of a chunk's type and data.
func chunkCRC(typ, data []byte) uint32 {
	crc := crc32.NewIEEE()
	_, _ = crc.Write(typ)
	_, _ = crc.Write(data)
	return crc.Sum32()
}
