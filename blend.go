package psx

// BlendMode names how a layer is composited over the layers below it.
// Values are the lowercase, hyphenated names stored in project manifests.
type BlendMode string

// Blend modes understood by the editor. Separable and non-separable modes
// follow the W3C Compositing and Blending Level 1 naming.
const (
	BlendNormal      BlendMode = "normal"
	BlendMultiply    BlendMode = "multiply"
	BlendScreen      BlendMode = "screen"
	BlendOverlay     BlendMode = "overlay"
	BlendDarken      BlendMode = "darken"
	BlendLighten     BlendMode = "lighten"
	BlendColorDodge  BlendMode = "color-dodge"
	BlendColorBurn   BlendMode = "color-burn"
	BlendHardLight   BlendMode = "hard-light"
	BlendSoftLight   BlendMode = "soft-light"
	BlendDifference  BlendMode = "difference"
	BlendExclusion   BlendMode = "exclusion"
	BlendHue         BlendMode = "hue"
	BlendSaturation  BlendMode = "saturation"
	BlendColor       BlendMode = "color"
	BlendLuminosity  BlendMode = "luminosity"
	BlendPassThrough BlendMode = "pass-through" // groups only
)

var knownBlendModes = map[BlendMode]bool{
	BlendNormal: true, BlendMultiply: true, BlendScreen: true, BlendOverlay: true,
	BlendDarken: true, BlendLighten: true, BlendColorDodge: true, BlendColorBurn: true,
	BlendHardLight: true, BlendSoftLight: true, BlendDifference: true, BlendExclusion: true,
	BlendHue: true, BlendSaturation: true, BlendColor: true, BlendLuminosity: true,
	BlendPassThrough: true,
}

// IsKnown reports whether m is one of the predefined blend modes.
// Unknown modes are still stored and round-tripped verbatim.
func (m BlendMode) IsKnown() bool {
	return knownBlendModes[m]
}

// String returns the manifest name of the blend mode.
func (m BlendMode) String() string {
	if m == "" {
		return string(BlendNormal)
	}
	return string(m)
}
