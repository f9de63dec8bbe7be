package wheel

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func labels(st State) []string {
	out := make([]string, len(st.Options))
	for i, o := range st.Options {
		out[i] = o.Label
	}
	return out
}

func TestNewStateCopiesDefaults(t *testing.T) {
	defaults := multipliers()
	st := NewState(defaults)
	defaults[0].Label = "changed"
	if st.Options[0].Label != "A" {
		t.Errorf("Expected state to own its options, got %s", st.Options[0].Label)
	}
	if st.Phase != Idle || st.TotalWeight() != 9 {
		t.Errorf("Expected idle wheel with weight 9, got %v / %v", st.Phase, st.TotalWeight())
	}
}

func TestAdd(t *testing.T) {
	st := NewState(multipliers())
	next, err := st.Add("  8x  ", DefaultWeight)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := labels(next); !reflect.DeepEqual(got, []string{"A", "B", "C", "D", "8x"}) {
		t.Errorf("Unexpected labels: %v", got)
	}
	if len(st.Options) != 4 {
		t.Errorf("Expected original state untouched, got %d options", len(st.Options))
	}

	if _, err := st.Add("   ", 1); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("Expected ErrInvalidLabel, got %v", err)
	}
	if _, err := st.Add(stringOf('x', MaxLabelLen+1), 1); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("Expected ErrInvalidLabel for long label, got %v", err)
	}
	if _, err := st.Add(stringOf('é', MaxLabelLen), 1); err != nil {
		t.Errorf("Expected %d runes to be accepted, got %v", MaxLabelLen, err)
	}
	if _, err := st.Add("x", 0); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Expected ErrInvalidWeight, got %v", err)
	}
}

func stringOf(r rune, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = r
	}
	return string(rs)
}

func TestEditLabel(t *testing.T) {
	st := NewState(multipliers())
	next, err := st.EditLabel(1, "Bônus")
	if err != nil {
		t.Fatalf("EditLabel failed: %v", err)
	}
	if next.Options[1].Label != "Bônus" || st.Options[1].Label != "B" {
		t.Errorf("Expected only the new state to change, got %q / %q", next.Options[1].Label, st.Options[1].Label)
	}
	if _, err := st.EditLabel(4, "x"); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}
	if _, err := st.EditLabel(-1, "x"); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}
}

func TestReweightRejectsInvalid(t *testing.T) {
	st := NewState(multipliers())
	for _, w := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		next, err := st.Reweight(0, w)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("Weight %v: expected ErrInvalidWeight, got %v", w, err)
		}
		if !reflect.DeepEqual(next.Options, multipliers()) {
			t.Errorf("Weight %v: expected sequence unchanged, got %v", w, next.Options)
		}
	}
	next, err := st.Reweight(3, 2)
	if err != nil {
		t.Fatalf("Reweight failed: %v", err)
	}
	if next.TotalWeight() != 10 {
		t.Errorf("Expected total weight 10, got %v", next.TotalWeight())
	}
}

func TestWeightsMustSumToFinite(t *testing.T) {
	st := NewState([]Option{{Label: "A", Weight: 1e308}})
	if _, err := st.Add("B", 1e308); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Add: expected ErrInvalidWeight, got %v", err)
	}
	two := NewState([]Option{{Label: "A", Weight: 1}, {Label: "B", Weight: 1e308}})
	next, err := two.Reweight(0, 1e308)
	if !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Reweight: expected ErrInvalidWeight, got %v", err)
	}
	if next.Options[0].Weight != 1 {
		t.Errorf("Expected weight unchanged, got %v", next.Options[0].Weight)
	}
}

func TestHugeWeightsStayFair(t *testing.T) {
	st := NewState([]Option{{Label: "A", Weight: DefaultWeight}})
	st, err := st.Reweight(0, 1e307)
	if err != nil {
		t.Fatalf("Reweight failed: %v", err)
	}
	st, err = st.Add("B", 1e307)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	counts := map[string]int{}
	for r := 0; r < 360; r++ {
		o, err := st.ResolveSpin(float64(r))
		if err != nil {
			t.Fatalf("ResolveSpin(%d): %v", r, err)
		}
		counts[o.Label]++
	}
	if counts["A"] != 180 || counts["B"] != 180 {
		t.Errorf("Expected an even split, got %v", counts)
	}
}

func TestParseWeight(t *testing.T) {
	if w, err := ParseWeight(" 2.5 "); err != nil || w != 2.5 {
		t.Errorf("Expected 2.5, got %v (%v)", w, err)
	}
	for _, s := range []string{"", "abc", "-1", "0", "NaN", "Inf"} {
		if _, err := ParseWeight(s); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("ParseWeight(%q): expected ErrInvalidWeight, got %v", s, err)
		}
	}
}

func TestMove(t *testing.T) {
	st := NewState(multipliers())
	next, err := st.Move(0, 2)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if got := labels(next); !reflect.DeepEqual(got, []string{"B", "C", "A", "D"}) {
		t.Errorf("Unexpected order: %v", got)
	}
	next, _ = st.Move(3, 0)
	if got := labels(next); !reflect.DeepEqual(got, []string{"D", "A", "B", "C"}) {
		t.Errorf("Unexpected order: %v", got)
	}
	for _, mv := range [][2]int{{1, 1}, {-1, 2}, {0, 4}, {9, 0}} {
		next, err := st.Move(mv[0], mv[1])
		if err != nil {
			t.Errorf("Move %v: expected no-op, got %v", mv, err)
		}
		if got := labels(next); !reflect.DeepEqual(got, []string{"A", "B", "C", "D"}) {
			t.Errorf("Move %v: expected unchanged order, got %v", mv, got)
		}
	}
	if got := labels(st); !reflect.DeepEqual(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("Original state was mutated: %v", got)
	}
}

func TestRemoveAndReset(t *testing.T) {
	st := NewState([]Option{{Label: "solo", Weight: 1}})
	st, err := st.Remove(0)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !st.Empty() {
		t.Errorf("Expected empty wheel, got %v", st.Options)
	}
	if _, err := st.Remove(0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}

	st.Rotation = 1234
	st.Last = &Outcome{Seq: 1}
	st, err = st.Reset(multipliers())
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(st.Options) != 4 || st.Last != nil {
		t.Errorf("Expected defaults restored and last cleared, got %v / %v", st.Options, st.Last)
	}
	if st.Rotation != 1234 {
		t.Errorf("Expected rotation kept, got %v", st.Rotation)
	}
}

func TestBeginSpinEmpty(t *testing.T) {
	st := NewState(nil)
	next, started, err := st.BeginSpin(fixedRNG{}, t0, time.Second)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("Expected ErrEmptySequence, got %v", err)
	}
	if started || next.Phase != Idle || next.Pending != nil {
		t.Errorf("Expected wheel to stay idle, got %v", next.Phase)
	}
}

func TestSpinLifecycle(t *testing.T) {
	st := NewState(multipliers())
	// 6 turns + 300 degrees: pointer at 60, inside A.
	rng := fixedRNG{n: 0, f: 300.0 / 360.0}
	st, started, err := st.BeginSpin(rng, t0, 6*time.Second)
	if err != nil || !started {
		t.Fatalf("BeginSpin: started=%v err=%v", started, err)
	}
	if st.Phase != Spinning || st.Pending == nil {
		t.Fatalf("Expected spinning with a pending spin, got %v", st.Phase)
	}
	seq := st.Pending.Seq
	if math.Abs(st.Rotation-(6*360+300)) > eps {
		t.Errorf("Expected rotation %v, got %v", 6*360+300, st.Rotation)
	}

	// A second spin while spinning changes nothing.
	again, started, err := st.BeginSpin(fixedRNG{n: 4, f: 0.1}, t0, time.Second)
	if err != nil || started {
		t.Errorf("Expected silent no-op, got started=%v err=%v", started, err)
	}
	if again.Pending.Seq != seq || again.Rotation != st.Rotation || again.Phase != Spinning {
		t.Errorf("Expected state unchanged by second spin")
	}

	// Structural edits are frozen during the spin.
	if _, err := st.Add("x", 1); !errors.Is(err, ErrSpinInProgress) {
		t.Errorf("Expected ErrSpinInProgress, got %v", err)
	}
	if _, err := st.Move(0, 1); !errors.Is(err, ErrSpinInProgress) {
		t.Errorf("Expected ErrSpinInProgress, got %v", err)
	}

	if _, _, err := st.CompleteSpin(seq+1, t0); !errors.Is(err, ErrSpinMismatch) {
		t.Errorf("Expected ErrSpinMismatch, got %v", err)
	}

	done, out, err := st.CompleteSpin(seq, t0.Add(6*time.Second))
	if err != nil {
		t.Fatalf("CompleteSpin failed: %v", err)
	}
	if out.Option.Label != "A" || out.Index != 0 {
		t.Errorf("Expected A, got %s (%d)", out.Option.Label, out.Index)
	}
	if math.Abs(out.PointerAngle-60) > 1e-6 {
		t.Errorf("Expected pointer angle 60, got %v", out.PointerAngle)
	}
	if done.Phase != Idle || done.Pending != nil || done.Last == nil || len(done.History) != 1 {
		t.Errorf("Expected idle with one recorded outcome, got %v / %d", done.Phase, len(done.History))
	}

	// Completion is consumed once.
	if _, _, err := done.CompleteSpin(seq, t0); !errors.Is(err, ErrNotSpinning) {
		t.Errorf("Expected ErrNotSpinning, got %v", err)
	}
}

func TestRotationIsMonotonic(t *testing.T) {
	st := NewState(multipliers())
	prev := st.Rotation
	for i := 0; i < 5; i++ {
		var err error
		st, _, err = st.BeginSpin(StdRNG{}, t0, time.Second)
		if err != nil {
			t.Fatalf("BeginSpin failed: %v", err)
		}
		if st.Rotation <= prev {
			t.Fatalf("Rotation went from %v to %v", prev, st.Rotation)
		}
		prev = st.Rotation
		st, _, err = st.CompleteSpin(st.Pending.Seq, t0)
		if err != nil {
			t.Fatalf("CompleteSpin failed: %v", err)
		}
	}
}

func TestHistoryIsBounded(t *testing.T) {
	st := NewState(multipliers())
	for i := 0; i < HistorySize+5; i++ {
		st, _, _ = st.BeginSpin(fixedRNG{f: 0.5}, t0, time.Second)
		st, _, _ = st.CompleteSpin(st.Pending.Seq, t0)
	}
	if len(st.History) != HistorySize {
		t.Fatalf("Expected %d outcomes, got %d", HistorySize, len(st.History))
	}
	if st.History[HistorySize-1].Seq != HistorySize+5 {
		t.Errorf("Expected newest outcome last, got seq %d", st.History[HistorySize-1].Seq)
	}
}

func TestSettleOverdue(t *testing.T) {
	st := NewState(multipliers())
	st, _, _ = st.BeginSpin(fixedRNG{f: 0.5}, t0, 6*time.Second)

	if st.Overdue(t0.Add(7 * time.Second)) {
		t.Errorf("Expected spin within grace period not to be overdue")
	}
	same, out := st.Settle(t0.Add(7 * time.Second))
	if out != nil || same.Phase != Spinning {
		t.Errorf("Expected no settlement yet")
	}

	late := t0.Add(6*time.Second + SettleGrace + time.Millisecond)
	if !st.Overdue(late) {
		t.Fatalf("Expected spin to be overdue")
	}
	settled, out := st.Settle(late)
	if out == nil || settled.Phase != Idle {
		t.Fatalf("Expected spin settled, got %v", settled.Phase)
	}
	// Pointer at 180 lands in B.
	if out.Option.Label != "B" {
		t.Errorf("Expected B, got %s", out.Option.Label)
	}
}
