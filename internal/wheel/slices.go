package wheel

import "math"

// FullTurn is the number of degrees in one revolution.
const FullTurn = 360.0

// TotalWeight sums the weights of opts. It is always recomputed, never cached.
func TotalWeight(opts []Option) float64 {
	total := 0.0
	for _, o := range opts {
		total += o.Weight
	}
	return total
}

// ComputeSlices partitions [0, 360) among opts in order, each slice's width
// proportional to its weight. The last slice always ends at exactly 360.
func ComputeSlices(opts []Option) []Slice {
	if len(opts) == 0 {
		return nil
	}
	total := TotalWeight(opts)
	out := make([]Slice, len(opts))
	start := 0.0
	for i, o := range opts {
		end := start + o.Weight/total*FullTurn
		if i == len(opts)-1 {
			end = FullTurn
		}
		out[i] = Slice{Option: o, Index: i, Start: start, End: end}
		start = end
	}
	return out
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}

// PointerAngle returns the position on the unrotated wheel that sits under
// the fixed pointer at the top once the wheel has turned clockwise by rotation.
func PointerAngle(rotation float64) float64 {
	return NormalizeAngle(FullTurn - NormalizeAngle(rotation))
}

// Resolve returns the index of the option under the pointer for the given
// rotation. When rounding leaves the position outside every half-open slice,
// the last slice wins.
func Resolve(opts []Option, rotation float64) (int, error) {
	if len(opts) == 0 {
		return 0, ErrEmptySequence
	}
	pos := PointerAngle(rotation)
	for _, s := range ComputeSlices(opts) {
		if pos >= s.Start && pos < s.End {
			return s.Index, nil
		}
	}
	return len(opts) - 1, nil
}
