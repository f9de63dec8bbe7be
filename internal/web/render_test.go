package web

import (
	"strings"
	"testing"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

func TestConicGradient(t *testing.T) {
	st := wheel.NewState(testCatalog().Presets["test"].Options)
	got := conicGradient(st.Slices(), []string{"#111111", "#222222", "#333333"})
	want := "conic-gradient(#111111 0.0000deg 120.0000deg,#222222 120.0000deg 200.0000deg," +
		"#333333 200.0000deg 320.0000deg,#111111 320.0000deg 360.0000deg)"
	if got != want {
		t.Errorf("Expected\n%s\ngot\n%s", want, got)
	}
	if conicGradient(nil, nil) != "#e5e7eb" {
		t.Error("Expected flat background for an empty wheel")
	}
}

func TestBuildWheelViewLabels(t *testing.T) {
	st := wheel.NewState(testCatalog().Presets["test"].Options)
	st.Rotation = 725
	v := buildWheelView(st, nil)
	if v.Rotation != 725 || len(v.Labels) != 4 {
		t.Fatalf("Unexpected view %+v", v)
	}
	mids := []float64{60, 160, 260, 340}
	for i, l := range v.Labels {
		if l.Angle != mids[i] {
			t.Errorf("Label %s: expected angle %v, got %v", l.Text, mids[i], l.Angle)
		}
	}
	if !strings.HasPrefix(string(v.Background), "conic-gradient(#8b5cf6 ") {
		t.Errorf("Expected default palette, got %s", v.Background)
	}
}
