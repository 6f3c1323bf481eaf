package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/psx"
)

var (
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// render formats the document header and its layer tree, topmost layer
// first as in a layers panel.
func render(doc *psx.Document) string {
	c := doc.Canvas
	header := strings.Join([]string{
		titleStyle.Render(doc.Name),
		fmt.Sprintf("%dx%d px, %g dpi, %s, %d-bit", c.Size.Width, c.Size.Height, c.DPI, c.ColorMode, c.BitDepth),
		faintStyle.Render(fmt.Sprintf("created %s, modified %s",
			doc.CreatedAt.Format(time.DateTime), doc.ModifiedAt.Format(time.DateTime))),
	}, "\n")

	var b strings.Builder
	b.WriteString(panelStyle.Render(header))
	b.WriteString("\n")
	writeChildren(&b, doc.RootGroup.Children, "")
	fmt.Fprintf(&b, "%d layers\n", doc.LayerCount())
	return b.String()
}

func writeChildren(b *strings.Builder, children []psx.Layer, indent string) {
	for i := len(children) - 1; i >= 0; i-- {
		last := i == 0
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(indent + branch + describe(children[i]) + "\n")
		if g, ok := children[i].(*psx.LayerGroup); ok {
			writeChildren(b, g.Children, indent+next)
		}
	}
}

// describe returns a one-line summary of a layer.
func describe(l psx.Layer) string {
	base := l.Base()
	parts := []string{kindStyle.Render(fmt.Sprintf("[%s]", l.Kind())), base.Name}

	switch v := l.(type) {
	case *psx.RasterLayer:
		if v.ImageData != nil {
			parts = append(parts, faintStyle.Render(fmt.Sprintf("%dx%d", v.ImageData.Width, v.ImageData.Height)))
		} else {
			parts = append(parts, faintStyle.Render("empty"))
		}
	case *psx.TextLayer:
		parts = append(parts, faintStyle.Render(fmt.Sprintf("%q %s %gpx", firstLine(v.Text), v.FontFamily, v.FontSize)))
	case *psx.LayerGroup:
		parts = append(parts, faintStyle.Render(fmt.Sprintf("%d children", len(v.Children))))
	}

	if base.Opacity < 1 {
		parts = append(parts, fmt.Sprintf("%.0f%%", base.Opacity*100))
	}
	if base.BlendMode != psx.BlendNormal && base.BlendMode != "" {
		parts = append(parts, base.BlendMode.String())
	}
	var flags []string
	if !base.Visible {
		flags = append(flags, "hidden")
	}
	if base.Locked {
		flags = append(flags, "locked")
	}
	if base.ClippingMask {
		flags = append(flags, "clip")
	}
	if base.Mask != nil {
		flags = append(flags, "mask")
	}
	if n := len(base.Effects); n > 0 {
		flags = append(flags, fmt.Sprintf("fx:%d", n))
	}
	if len(flags) > 0 {
		parts = append(parts, flagStyle.Render(strings.Join(flags, ",")))
	}
	return strings.Join(parts, " ")
}

func firstLine(s string) string {
	line, _, cut := strings.Cut(s, "\n")
	if cut {
		return line + "…"
	}
	return line
}
