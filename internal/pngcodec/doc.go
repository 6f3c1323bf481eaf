// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pngcodec encodes and decodes single-frame 8-bit RGBA PNG images.
//
// The encoder always writes the same minimal shape: signature, IHDR, one
// IDAT with every scanline using filter type 0 (None), and IEND. Skipping
// filter selection keeps encoding fast for multi-megapixel layers at the
// cost of compression ratio.
//
// The decoder accepts any non-interlaced 8-bit RGBA PNG, including files
// written by other tools: all five scanline filters (None, Sub, Up,
// Average, Paeth) are reversed, IDAT payloads may be split across chunks,
// and ancillary chunks are skipped.
//
// Deflate and CRC-32 come from compress/zlib and hash/crc32.
package pngcodec
