// Package psx provides the document model of a layered image editor.
//
// # Overview
//
// A [Document] owns canvas metadata and a tree of layers rooted at a
// [LayerGroup]. Layers are raster, text or group layers and share the
// fields of [LayerBase]. The tree is mutated only through the functions
// in this package ([AddLayer], [RemoveLayer], [ReorderLayer],
// [ToggleClippingMask]), which keep every layer's ParentID in sync with
// the group that holds it.
//
// # Quick Start
//
//	doc := psx.NewDocument("Poster", 1920, 1080)
//
//	bg := psx.NewRasterLayer("Background", 1920, 1080)
//	psx.AddLayer(doc.RootGroup, bg, "", -1)
//
//	group := psx.NewLayerGroup("Titles")
//	psx.AddLayer(doc.RootGroup, group, "", -1)
//	psx.AddLayer(doc.RootGroup, psx.NewTextLayer("Headline", "Hello"), group.ID, -1)
//
//	for _, l := range psx.FlattenLayers(doc.RootGroup) {
//	    fmt.Println(l.Base().Name)
//	}
//
// # Related packages
//
//   - history: undo/redo engine and stock layer commands
//   - project: .psxp project files (manifest.json + PNG blobs in a ZIP)
//   - textmetrics: text-layer bounds measurement
//
// # Concurrency
//
// Nothing in this package is safe for concurrent mutation. A Document is
// owned by one editing session at a time; use history.Editor when several
// goroutines need to reach the same document.
package psx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
