package psx

// LayerKind discriminates the layer variants.
type LayerKind string

// Layer kinds, as written to the "type" field of project manifests.
const (
	KindRaster LayerKind = "raster"
	KindText   LayerKind = "text"
	KindGroup  LayerKind = "group"
)

// Layer is implemented by *RasterLayer, *TextLayer and *LayerGroup.
// The set is closed; consumers switch on the concrete type:
//
//	switch l := layer.(type) {
//	case *psx.RasterLayer:
//	case *psx.TextLayer:
//	case *psx.LayerGroup:
//	}
type Layer interface {
	// Kind returns the variant discriminant.
	Kind() LayerKind

	// Base returns the fields shared by every variant.
	Base() *LayerBase

	isLayer()
}

// LayerBase holds the fields shared by all layer variants.
type LayerBase struct {
	ID        string
	Name      string
	Visible   bool
	Opacity   float64 // 0.0 - 1.0
	BlendMode BlendMode
	Position  Point
	Locked    bool
	Effects   []LayerEffect

	// ParentID is the ID of the group holding this layer, or "" when the
	// layer is detached. Maintained by the tree functions only.
	ParentID string

	// Mask is nil when the layer has no mask.
	Mask *LayerMask

	// ClippingMask clips the layer to the opaque area of the nearest
	// non-clipping sibling below it.
	ClippingMask bool
}

// Base returns b. It lets variants satisfy [Layer] by embedding LayerBase.
func (b *LayerBase) Base() *LayerBase { return b }

func (*LayerBase) isLayer() {}

// SetOpacity sets the opacity, clamped to [0.0, 1.0].
func (b *LayerBase) SetOpacity(opacity float64) {
	b.Opacity = clampUnit(opacity)
}

// RasterLayer is a layer of pixels.
type RasterLayer struct {
	LayerBase

	// ImageData is nil until the layer is painted on.
	ImageData *ImageData
	Bounds    Rect
}

// Kind implements [Layer].
func (*RasterLayer) Kind() LayerKind { return KindRaster }

// TextAlign is the horizontal alignment of a text layer.
type TextAlign string

// Text alignments.
const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

// TextLayer is an editable text layer.
type TextLayer struct {
	LayerBase

	Text          string
	FontFamily    string
	FontSize      float64
	Color         string // CSS hex color, e.g. "#000000"
	Bold          bool
	Italic        bool
	Alignment     TextAlign
	LineHeight    float64 // multiple of FontSize
	LetterSpacing float64 // extra pixels between glyphs
	TextBounds    Rect
}

// Kind implements [Layer].
func (*TextLayer) Kind() LayerKind { return KindText }

// LayerGroup contains child layers. Children are ordered bottom to top.
type LayerGroup struct {
	LayerBase

	Children []Layer
	Expanded bool
}

// Kind implements [Layer].
func (*LayerGroup) Kind() LayerKind { return KindGroup }

// Defaults applied by the layer factories.
const (
	DefaultFontFamily = "Arial"
	DefaultFontSize   = 24.0
	DefaultTextColor  = "#000000"
	DefaultLineHeight = 1.2
)

func newLayerBase(name string) LayerBase {
	return LayerBase{
		ID:        NewID(),
		Name:      name,
		Visible:   true,
		Opacity:   1.0,
		BlendMode: BlendNormal,
	}
}

// NewRasterLayer creates an empty raster layer covering width x height
// pixels at the canvas origin. ImageData is left nil.
func NewRasterLayer(name string, width, height int) *RasterLayer {
	return &RasterLayer{
		LayerBase: newLayerBase(name),
		Bounds:    NewRect(0, 0, float64(width), float64(height)),
	}
}

// NewRasterLayerFromImage creates a raster layer holding img, with bounds
// matching the image dimensions.
func NewRasterLayerFromImage(name string, img *ImageData) *RasterLayer {
	l := NewRasterLayer(name, img.Width, img.Height)
	l.ImageData = img
	return l
}

// NewTextLayer creates a text layer with default styling.
func NewTextLayer(name, text string) *TextLayer {
	return &TextLayer{
		LayerBase:  newLayerBase(name),
		Text:       text,
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		Color:      DefaultTextColor,
		Alignment:  AlignLeft,
		LineHeight: DefaultLineHeight,
	}
}

// NewLayerGroup creates an empty, expanded group.
func NewLayerGroup(name string) *LayerGroup {
	return &LayerGroup{
		LayerBase: newLayerBase(name),
		Children:  []Layer{},
		Expanded:  true,
	}
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
