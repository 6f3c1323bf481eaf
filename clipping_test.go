package psx

import (
	"slices"
	"testing"
)

// stack returns layers named by index with the given clipping flags,
// attached to a fresh root.
func stack(t *testing.T, flags ...bool) (*LayerGroup, []Layer) {
	t.Helper()
	root := NewRootGroup()
	for i, clip := range flags {
		l := NewRasterLayer(string(rune('0'+i)), 1, 1)
		l.ClippingMask = clip
		AddLayer(root, l, "", -1)
	}
	return root, root.Children
}

func TestGetClippingBase(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		layer int
		want  int // -1 for nil
	}{
		{"bottom layer", []bool{false, true}, 0, -1},
		{"directly above base", []bool{false, true}, 1, 0},
		{"skips clipping layers", []bool{false, true, true}, 2, 0},
		{"nearest base", []bool{false, false, true}, 2, 1},
		{"all below clipping", []bool{true, true, true}, 2, -1},
		{"non-clipping layer still finds base", []bool{false, false}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sib := stack(t, tt.flags...)
			got := GetClippingBase(sib[tt.layer], sib)
			if tt.want < 0 {
				if got != nil {
					t.Errorf("GetClippingBase = %s, want nil", got.Base().Name)
				}
				return
			}
			if got != sib[tt.want] {
				t.Errorf("GetClippingBase = %v, want %s", got, sib[tt.want].Base().Name)
			}
		})
	}

	_, sib := stack(t, false, true)
	if GetClippingBase(NewRasterLayer("stranger", 1, 1), sib) != nil {
		t.Error("layer outside siblings should have no base")
	}
}

func TestGetClippedLayers(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		base  int
		want  []string
	}{
		{"run above base", []bool{false, true, true, false, true}, 0, []string{"1", "2"}},
		{"stops at first non-clipping", []bool{false, false, true}, 0, nil},
		{"second base", []bool{false, true, false, true}, 2, []string{"3"}},
		{"top layer", []bool{false, true}, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sib := stack(t, tt.flags...)
			got := layerNames(GetClippedLayers(sib[tt.base], sib))
			if !slices.Equal(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("GetClippedLayers = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleClippingMask(t *testing.T) {
	root, sib := stack(t, false, false)

	if ToggleClippingMask(root, sib[0].Base().ID) || IsClippingMask(sib[0]) {
		t.Error("set on bottom-most layer should be refused")
	}
	if !ToggleClippingMask(root, sib[1].Base().ID) || !IsClippingMask(sib[1]) {
		t.Error("set on layer 1 failed")
	}
	if !ToggleClippingMask(root, sib[1].Base().ID) || IsClippingMask(sib[1]) {
		t.Error("unset on layer 1 failed")
	}
	if ToggleClippingMask(root, "missing") {
		t.Error("toggle of unknown id should be a no-op")
	}

	// A flag already on the bottom layer can be cleared.
	sib[0].Base().ClippingMask = true
	if !ToggleClippingMask(root, sib[0].Base().ID) || IsClippingMask(sib[0]) {
		t.Error("clear on bottom-most layer failed")
	}

	// Bottom of a nested group counts as bottom-most.
	g := NewLayerGroup("g")
	AddLayer(root, g, "", -1)
	inner := NewTextLayer("t", "t")
	AddLayer(root, inner, g.ID, -1)
	if ToggleClippingMask(root, inner.ID) {
		t.Error("set on bottom of nested group should be refused")
	}
}
