package psx

// LayerMask is a single-channel mask attached to a layer.
// Values range from 0 (hidden) to 255 (revealed). Its dimensions and
// offset are independent of the owning layer's bounds.
type LayerMask struct {
	Data    []uint8
	Width   int
	Height  int
	Offset  Point
	Enabled bool
}

// NewLayerMask creates an enabled mask that reveals the whole layer
// (all values 255).
func NewLayerMask(width, height int) *LayerMask {
	m := &LayerMask{
		Data:    make([]uint8, width*height),
		Width:   width,
		Height:  height,
		Enabled: true,
	}
	m.Fill(255)
	return m
}

// At returns the mask value at (x, y) in mask-local coordinates.
// Returns 0 for coordinates outside the mask bounds.
func (m *LayerMask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *LayerMask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Data[y*m.Width+x] = value
}

// Fill fills the entire mask with a value.
func (m *LayerMask) Fill(value uint8) {
	for i := range m.Data {
		m.Data[i] = value
	}
}

// Invert inverts all mask values (255 - value).
func (m *LayerMask) Invert() {
	for i := range m.Data {
		m.Data[i] = 255 - m.Data[i]
	}
}

// Clone creates a deep copy of the mask. A nil receiver returns nil.
func (m *LayerMask) Clone() *LayerMask {
	if m == nil {
		return nil
	}
	clone := *m
	clone.Data = make([]uint8, len(m.Data))
	copy(clone.Data, m.Data)
	return &clone
}
