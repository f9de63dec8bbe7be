package wheel

import (
	"math"
	"testing"
)

// fixedRNG returns scripted values.
type fixedRNG struct {
	n int
	f float64
}

func (r fixedRNG) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRNG) Float64() float64 { return r.f }

func TestSpinTargetBounds(t *testing.T) {
	cases := []struct {
		rng  fixedRNG
		want float64
	}{
		{fixedRNG{n: 0, f: 0}, 6 * 360},
		{fixedRNG{n: 4, f: 0.5}, 10*360 + 180},
		{fixedRNG{n: 2, f: 0.25}, 8*360 + 90},
	}
	for _, c := range cases {
		if got := SpinTarget(c.rng); math.Abs(got-c.want) > eps {
			t.Errorf("Expected %v, got %v", c.want, got)
		}
	}
}

func TestSpinTargetStdRNG(t *testing.T) {
	var rng StdRNG
	for i := 0; i < 1000; i++ {
		got := SpinTarget(rng)
		if got < MinExtraSpins*FullTurn || got >= (MaxExtraSpins+1)*FullTurn {
			t.Fatalf("Spin target %v outside [%v, %v)", got, MinExtraSpins*FullTurn, (MaxExtraSpins+1)*FullTurn)
		}
	}
}
