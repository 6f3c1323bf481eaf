// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pngcodec

import "github.com/gogpu/psx"

// Validation errors (match psx.ErrValidation).
var (
	// ErrSizeMismatch is returned by Encode when len(Data) != Width*Height*4.
	ErrSizeMismatch = psx.NewValidationError("pngcodec: image data size mismatch")

	// ErrInvalidDimensions is returned by Encode for zero or negative sizes.
	ErrInvalidDimensions = psx.NewValidationError("pngcodec: invalid image dimensions")
)

// Format errors (match psx.ErrFormat).
var (
	// ErrInvalidSignature is returned when the input does not start with
	// the 8-byte PNG signature, including empty input.
	ErrInvalidSignature = psx.NewFormatError("pngcodec: invalid signature")

	// ErrUnsupportedFormat is returned for anything other than
	// non-interlaced 8-bit RGBA (bit depth 8, color type 6).
	ErrUnsupportedFormat = psx.NewFormatError("pngcodec: unsupported format")

	// ErrMissingIHDR is returned when no IHDR chunk precedes the end of
	// the stream, or it declares a zero width or height.
	ErrMissingIHDR = psx.NewFormatError("pngcodec: missing IHDR")

	// ErrInvalidHeader is returned for an IHDR chunk of the wrong length.
	ErrInvalidHeader = psx.NewFormatError("pngcodec: invalid IHDR")

	// ErrTruncated is returned when a chunk or the image data ends early.
	ErrTruncated = psx.NewFormatError("pngcodec: truncated data")

	// ErrChecksum is returned when a chunk CRC does not match its contents.
	ErrChecksum = psx.NewFormatError("pngcodec: chunk checksum mismatch")

	// ErrUnknownFilter is returned for a scanline filter byte above 4.
	ErrUnknownFilter = psx.NewFormatError("pngcodec: unknown filter type")

	// ErrCorruptData is returned when the IDAT payload fails to inflate.
	ErrCorruptData = psx.NewFormatError("pngcodec: corrupt image data")
)
