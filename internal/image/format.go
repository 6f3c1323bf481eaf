// Package image provides the pixel buffers exchanged between the layer
// model and the PNG codec.
//
// Raster layers are 8-bit RGBA; layer masks are 8-bit single channel.
// Project files store both as RGBA PNGs, so masks are expanded on save
// and collapsed on load through [ImageBuf.Convert].
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit single channel (1 byte per pixel).
	// Used for layer masks.
	FormatGray8 Format = iota

	// FormatRGBA8 is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	// This is the storage format of raster layers and PNG blobs.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {BytesPerPixel: 1, HasAlpha: false},
	FormatRGBA8: {BytesPerPixel: 4, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
