package psx

import "fmt"

// ImageData is a non-premultiplied 8-bit RGBA pixel buffer.
// Pixels are stored row-major without padding, 4 bytes per pixel.
type ImageData struct {
	Data   []byte
	Width  int
	Height int
}

// NewImageData creates a transparent buffer with the given dimensions.
func NewImageData(width, height int) *ImageData {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageData{
		Data:   make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Validate reports an ErrValidation-class error if len(Data) does not
// equal Width*Height*4.
func (img *ImageData) Validate() error {
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrValidation, img.Width, img.Height)
	}
	if want := img.Width * img.Height * 4; len(img.Data) != want {
		return fmt.Errorf("%w: data length %d, want %d for %dx%d RGBA",
			ErrValidation, len(img.Data), want, img.Width, img.Height)
	}
	return nil
}

// Clone returns a deep copy of the buffer. A nil receiver returns nil.
func (img *ImageData) Clone() *ImageData {
	if img == nil {
		return nil
	}
	data := make([]byte, len(img.Data))
	copy(data, img.Data)
	return &ImageData{Data: data, Width: img.Width, Height: img.Height}
}

// SetRGBA sets the pixel at (x, y). Coordinates outside the buffer are ignored.
func (img *ImageData) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	i := (y*img.Width + x) * 4
	img.Data[i+0] = r
	img.Data[i+1] = g
	img.Data[i+2] = b
	img.Data[i+3] = a
}

// RGBAAt returns the pixel at (x, y), or transparent black outside the buffer.
func (img *ImageData) RGBAAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0, 0, 0, 0
	}
	i := (y*img.Width + x) * 4
	return img.Data[i+0], img.Data[i+1], img.Data[i+2], img.Data[i+3]
}
