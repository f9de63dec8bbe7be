package web

import "github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"

const (
	confettiPieces = 28
	// ConfettiLifetimeMS is how long the client keeps pieces on screen.
	ConfettiLifetimeMS = 2500
)

var confettiColors = []string{"#8b5cf6", "#06b6d4", "#f97316", "#10b981", "#ef4444"}

// ConfettiPiece is one animated scrap. Sizes and offsets are in px, Left and
// Top are percentages of the container, angles in degrees.
type ConfettiPiece struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Left       float64 `json:"left"`
	Top        float64 `json:"top"`
	Color      string  `json:"color"`
	Rotate     float64 `json:"rotate"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Spin       float64 `json:"spin"`
	DurationMS int     `json:"duration_ms"`
}

// Confetti lays out a celebration burst. It is purely cosmetic and has no
// bearing on the outcome.
func Confetti(rng wheel.RNG) []ConfettiPiece {
	out := make([]ConfettiPiece, confettiPieces)
	for i := range out {
		out[i] = ConfettiPiece{
			Width:      8 + rng.Float64()*8,
			Height:     10 + rng.Float64()*14,
			Left:       50 + (rng.Float64()-0.5)*60,
			Top:        50 + (rng.Float64()-0.5)*60,
			Color:      confettiColors[rng.IntN(len(confettiColors))],
			Rotate:     rng.Float64() * 360,
			X:          (rng.Float64() - 0.5) * 800,
			Y:          400 + rng.Float64()*200,
			Spin:       rng.Float64() * 720,
			DurationMS: 1800 + int(rng.Float64()*1000),
		}
	}
	return out
}
