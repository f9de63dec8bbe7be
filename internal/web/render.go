package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

// labelRadius is how far from the center labels sit, in px.
const labelRadius = 150

// WheelView is what the template needs to draw the wheel.
type WheelView struct {
	Background template.CSS
	Rotation   float64
	Labels     []LabelView
}

// LabelView places one label at the middle angle of its slice.
type LabelView struct {
	Text  string
	Angle float64
}

// sliceColor picks the palette entry for slice i, cycling.
func sliceColor(palette []string, i int) string {
	if len(palette) == 0 {
		palette = wheel.DefaultPalette
	}
	return palette[i%len(palette)]
}

// conicGradient renders slices as CSS conic-gradient stops. An empty wheel
// is drawn as a flat grey disc.
func conicGradient(slices []wheel.Slice, palette []string) string {
	if len(slices) == 0 {
		return "#e5e7eb"
	}
	stops := make([]string, len(slices))
	for i, s := range slices {
		stops[i] = fmt.Sprintf("%s %.4fdeg %.4fdeg", sliceColor(palette, s.Index), s.Start, s.End)
	}
	return "conic-gradient(" + strings.Join(stops, ",") + ")"
}

func buildWheelView(st wheel.State, palette []string) WheelView {
	slices := st.Slices()
	labels := make([]LabelView, len(slices))
	for i, s := range slices {
		labels[i] = LabelView{Text: s.Option.Label, Angle: s.Mid()}
	}
	// Palette entries are validated hex colors, so the gradient is safe CSS.
	return WheelView{
		Background: template.CSS(conicGradient(slices, palette)),
		Rotation:   st.Rotation,
		Labels:     labels,
	}
}
