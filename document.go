package psx

import "time"

// ColorMode is the document color model.
type ColorMode string

// Color modes.
const (
	ColorModeRGB       ColorMode = "rgb"
	ColorModeGrayscale ColorMode = "grayscale"
	ColorModeCMYK      ColorMode = "cmyk"
)

// Canvas defaults.
const (
	DefaultDPI      = 72.0
	DefaultBitDepth = 8
)

// Canvas describes the document surface. It is persisted verbatim in
// project manifests.
type Canvas struct {
	Size      Size      `json:"size"`
	DPI       float64   `json:"dpi"`
	ColorMode ColorMode `json:"colorMode"`
	BitDepth  int       `json:"bitDepth"`
}

// NewCanvas creates an RGB, 8-bit, 72 dpi canvas.
func NewCanvas(width, height int) Canvas {
	return Canvas{
		Size:      Size{Width: width, Height: height},
		DPI:       DefaultDPI,
		ColorMode: ColorModeRGB,
		BitDepth:  DefaultBitDepth,
	}
}

// Document is the aggregate root of an editing session: canvas metadata,
// the layer tree, and transient UI state.
//
// SelectedLayerID, FilePath and Dirty are session state. They are not
// written to project files and are reset when a document is loaded.
type Document struct {
	ID        string
	Name      string
	Canvas    Canvas
	RootGroup *LayerGroup

	SelectedLayerID string // "" when nothing is selected
	FilePath        string // "" until saved or opened
	Dirty           bool

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewDocument creates a document with an empty root group.
func NewDocument(name string, width, height int) *Document {
	return NewDocumentWithCanvas(name, NewCanvas(width, height))
}

// NewDocumentWithCanvas creates a document with an empty root group and
// the given canvas.
func NewDocumentWithCanvas(name string, canvas Canvas) *Document {
	now := Now()
	return &Document{
		ID:         NewID(),
		Name:       name,
		Canvas:     canvas,
		RootGroup:  NewRootGroup(),
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// NewRootGroup creates the detached, unnamed group used as a tree root.
func NewRootGroup() *LayerGroup {
	return NewLayerGroup("root")
}

// Now returns the current time, in UTC with millisecond precision, as
// stored in document timestamps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// SelectedLayer returns the selected layer, or nil.
func (d *Document) SelectedLayer() Layer {
	if d.SelectedLayerID == "" {
		return nil
	}
	return FindLayerByID(d.RootGroup, d.SelectedLayerID)
}

// MarkDirty flags unsaved changes and updates ModifiedAt.
func (d *Document) MarkDirty() {
	d.Dirty = true
	d.ModifiedAt = Now()
}

// LayerCount returns the number of layers in the tree, groups included.
func (d *Document) LayerCount() int {
	n := 0
	TraverseLayers(d.RootGroup, func(Layer) { n++ })
	return n
}
