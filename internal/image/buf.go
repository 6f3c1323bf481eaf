package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataSize is returned when data length does not match the dimensions.
	ErrDataSize = errors.New("image: data length does not match dimensions")
)

// ImageBuf is a tightly packed pixel buffer (stride == RowBytes(width)).
// Zero-sized buffers are valid: empty masks and layers round-trip as such.
//
// Thread safety: ImageBuf is not safe for concurrent writes.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewImageBuf creates a zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &ImageBuf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying. The length of data must be
// exactly format.ImageBytes(width, height).
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if len(data) != format.ImageBytes(width, height) {
		return nil, ErrDataSize
	}
	return &ImageBuf{data: data, width: width, height: height, format: format}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	n := b.format.RowBytes(b.width)
	return b.data[y*n : (y+1)*n]
}

// Convert returns a new buffer holding the pixels in format f.
//
// Gray8 to RGBA8 replicates the value into R, G and B with opaque alpha.
// RGBA8 to Gray8 keeps the red channel, the inverse of that expansion.
// Converting to the same format returns a copy.
func (b *ImageBuf) Convert(f Format) (*ImageBuf, error) {
	out, err := NewImageBuf(b.width, b.height, f)
	if err != nil {
		return nil, err
	}
	n := b.width * b.height
	switch {
	case b.format == f:
		copy(out.data, b.data)
	case b.format == FormatGray8 && f == FormatRGBA8:
		for i := range n {
			v := b.data[i]
			o := i * 4
			out.data[o+0] = v
			out.data[o+1] = v
			out.data[o+2] = v
			out.data[o+3] = 255
		}
	case b.format == FormatRGBA8 && f == FormatGray8:
		for i := range n {
			out.data[i] = b.data[i*4]
		}
	default:
		return nil, ErrInvalidFormat
	}
	return out, nil
}
