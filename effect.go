package psx

// EffectType identifies a layer effect.
type EffectType string

// Layer effect types.
const (
	EffectDropShadow   EffectType = "drop-shadow"
	EffectInnerShadow  EffectType = "inner-shadow"
	EffectOuterGlow    EffectType = "outer-glow"
	EffectInnerGlow    EffectType = "inner-glow"
	EffectStroke       EffectType = "stroke"
	EffectColorOverlay EffectType = "color-overlay"
)

// LayerEffect is a non-destructive effect attached to a layer.
//
// The effect schema is owned by the rendering side of the application;
// this package stores and round-trips it without interpreting it. Unused
// parameters are left at their zero value and omitted from manifests.
type LayerEffect struct {
	Type      EffectType `json:"type"`
	Enabled   bool       `json:"enabled"`
	Color     string     `json:"color,omitempty"`
	Opacity   float64    `json:"opacity,omitempty"`
	BlendMode BlendMode  `json:"blendMode,omitempty"`
	Size      float64    `json:"size,omitempty"`
	Spread    float64    `json:"spread,omitempty"`
	Distance  float64    `json:"distance,omitempty"`
	Angle     float64    `json:"angle,omitempty"`
	Position  string     `json:"position,omitempty"` // stroke: inside, center, outside
}
