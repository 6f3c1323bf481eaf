// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package project

import "github.com/gogpu/psx"

// Project file errors. All of them match psx.ErrFormat.
var (
	// ErrMissingManifest is returned when an archive has no manifest.json.
	ErrMissingManifest = psx.NewFormatError("project: missing manifest.json")

	// ErrInvalidManifest is returned when manifest.json is not valid JSON
	// for the manifest schema.
	ErrInvalidManifest = psx.NewFormatError("project: invalid manifest")

	// ErrUnsupportedVersion is returned for manifest versions other than
	// FormatVersion.
	ErrUnsupportedVersion = psx.NewFormatError("project: unsupported format version")

	// ErrMissingBlob is returned when the manifest references an image or
	// mask path that is not in the file set.
	ErrMissingBlob = psx.NewFormatError("project: referenced blob not found")

	// ErrMaskSize is returned when a decoded mask does not match the
	// dimensions recorded in the manifest.
	ErrMaskSize = psx.NewFormatError("project: mask dimensions mismatch")
)
