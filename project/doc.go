// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package project reads and writes .psxp project files.
//
// A project file is a ZIP archive holding:
//
//	manifest.json      canvas, layer tree and timestamps (see [Manifest])
//	layers/<id>.png    raster layer pixels, 8-bit RGBA
//	masks/<id>.png     layer masks, expanded to RGBA (value in R, G and B)
//
// Saving is split in two stages. [ToProjectFile] turns a document into a
// manifest plus named PNG blobs; [Serialize] archives that result.
// Loading mirrors it with [Deserialize] and [FromProjectFile].
//
// Loading always produces a fresh document: new document and root group
// ids, no selection, no file path, not dirty. Only the canvas, the layer
// tree (layer ids included) and the two timestamps survive a round trip.
//
// Example:
//
//	data, err := project.Serialize(doc)
//	if err != nil {
//	    return err
//	}
//	restored, err := project.Deserialize(data)
package project
