package textmetrics

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/psx"
)

// style indexes a family's faces: bit 0 is bold, bit 1 is italic.
type style int

const (
	styleRegular style = iota
	styleBold
	styleItalic
	styleBoldItalic
)

func styleOf(bold, italic bool) style {
	s := styleRegular
	if bold {
		s |= styleBold
	}
	if italic {
		s |= styleItalic
	}
	return s
}

// family holds parsed fonts per style. Missing styles are nil.
type family [4]*font.Font

// Measurer computes text layer bounds.
//
// Measurer is safe for concurrent use. Parsed fonts are shared; a
// font.Face and a HarfbuzzShaper are taken per call since neither is safe
// for concurrent use.
type Measurer struct {
	shaperPool sync.Pool

	mu       sync.RWMutex
	families map[string]*family
	fallback family
}

// NewMeasurer creates a Measurer that falls back to the Go fonts.
func NewMeasurer() (*Measurer, error) {
	m := &Measurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		families: make(map[string]*family),
	}
	for s, ttf := range [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		f, err := parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("textmetrics: go font: %w", err)
		}
		m.fallback[s] = f
	}
	return m, nil
}

var defaultMeasurer = sync.OnceValue(func() *Measurer {
	m, err := NewMeasurer()
	if err != nil {
		panic(err) // embedded fonts
	}
	return m
})

// Default returns the shared Measurer used by Measure.
func Default() *Measurer {
	return defaultMeasurer()
}

// Measure returns the bounds of layer using the default Measurer.
func Measure(layer *psx.TextLayer) psx.Rect {
	return Default().Measure(layer)
}

// Register adds a TrueType or OpenType face for family in the given style.
// Family names are matched case-insensitively.
func (m *Measurer) Register(familyName string, bold, italic bool, data []byte) error {
	f, err := parse(data)
	if err != nil {
		return fmt.Errorf("textmetrics: register %q: %w", familyName, err)
	}
	key := strings.ToLower(familyName)

	m.mu.Lock()
	defer m.mu.Unlock()
	fam := m.families[key]
	if fam == nil {
		fam = &family{}
		m.families[key] = fam
	}
	fam[styleOf(bold, italic)] = f
	return nil
}

// lookup returns the font for a family and style. A registered family
// without the style falls back to its regular face, then to the Go fonts.
func (m *Measurer) lookup(familyName string, s style) *font.Font {
	m.mu.RLock()
	fam := m.families[strings.ToLower(familyName)]
	m.mu.RUnlock()
	if fam != nil {
		if f := fam[s]; f != nil {
			return f
		}
		if f := fam[styleRegular]; f != nil {
			return f
		}
	}
	return m.fallback[s]
}

// Measure returns the bounds of the layer's text relative to its position:
// the widest line by the number of lines times FontSize*LineHeight.
// LetterSpacing is added between glyphs. Empty text or a non-positive
// font size measures as an empty rectangle.
func (m *Measurer) Measure(layer *psx.TextLayer) psx.Rect {
	if layer.Text == "" || layer.FontSize <= 0 {
		return psx.Rect{}
	}
	lineHeight := layer.LineHeight
	if lineHeight <= 0 {
		lineHeight = psx.DefaultLineHeight
	}

	f := m.lookup(layer.FontFamily, styleOf(layer.Bold, layer.Italic))
	face := font.NewFace(f)
	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer m.shaperPool.Put(hb)

	lines := strings.Split(strings.ReplaceAll(layer.Text, "\r\n", "\n"), "\n")
	var width float64
	for _, line := range lines {
		width = math.Max(width, lineWidth(hb, face, line, layer.FontSize, layer.LetterSpacing))
	}

	return psx.NewRect(0, 0, math.Ceil(width), float64(len(lines))*layer.FontSize*lineHeight)
}

// lineWidth shapes one line and returns its advance in pixels.
func lineWidth(hb *shaping.HarfbuzzShaper, face *font.Face, line string, size, spacing float64) float64 {
	runes := []rune(line)
	if len(runes) == 0 {
		return 0
	}
	out := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: lineDirection(line),
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	w := fixedToFloat(adv)
	if n := len(out.Glyphs); n > 1 {
		w += spacing * float64(n-1)
	}
	return math.Max(w, 0)
}

// lineDirection returns right-to-left when most runes of line fall in
// right-to-left bidi runs.
func lineDirection(line string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(line); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return di.DirectionLTR
	}

	// run.Pos() returns rune indices, end inclusive
	var rtl, total int
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		n := end - start + 1
		total += n
		if run.Direction() == bidi.RightToLeft {
			rtl += n
		}
	}
	if rtl*2 > total {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func parse(data []byte) (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
