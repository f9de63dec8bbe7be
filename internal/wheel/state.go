package wheel

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxLabelLen caps option labels, in runes.
	MaxLabelLen = 64
	// DefaultWeight is the weight given to options added without one.
	DefaultWeight = 1.0
	// HistorySize is how many recent outcomes a State keeps.
	HistorySize = 10
	// SettleGrace is added to a spin's duration before it counts as overdue.
	SettleGrace = 2 * time.Second
)

// NewState returns an idle wheel holding a copy of defaults.
func NewState(defaults []Option) State {
	return State{Options: slices.Clone(defaults)}
}

// TotalWeight returns the sum of the current option weights.
func (st State) TotalWeight() float64 { return TotalWeight(st.Options) }

// Slices returns the current angular partition.
func (st State) Slices() []Slice { return ComputeSlices(st.Options) }

// Empty reports whether the wheel has no options.
func (st State) Empty() bool { return len(st.Options) == 0 }

// ResolveSpin returns the option under the pointer for rotation.
func (st State) ResolveSpin(rotation float64) (Option, error) {
	i, err := Resolve(st.Options, rotation)
	if err != nil {
		return Option{}, err
	}
	return st.Options[i], nil
}

// NormalizeLabel trims a label and checks it is usable.
func NormalizeLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" || utf8.RuneCountInString(label) > MaxLabelLen {
		return "", ErrInvalidLabel
	}
	return label, nil
}

// ValidWeight reports whether w can be used as an option weight.
func ValidWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// finiteTotal reports whether the weights of opts sum to a finite number.
// Each weight may be finite while their sum overflows.
func finiteTotal(opts []Option) bool {
	return !math.IsInf(TotalWeight(opts), 0)
}

// ParseWeight parses user input such as " 2.5 " into a weight.
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !ValidWeight(w) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return w, nil
}

func (st State) checkMutable() error {
	if st.Phase == Spinning {
		return ErrSpinInProgress
	}
	return nil
}

func (st State) checkIndex(i int) error {
	if i < 0 || i >= len(st.Options) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return nil
}

// Add appends a new option.
func (st State) Add(label string, weight float64) (State, error) {
	if err := st.checkMutable(); err != nil {
		return st, err
	}
	label, err := NormalizeLabel(label)
	if err != nil {
		return st, err
	}
	if !ValidWeight(weight) {
		return st, ErrInvalidWeight
	}
	opts := append(slices.Clone(st.Options), Option{Label: label, Weight: weight})
	if !finiteTotal(opts) {
		return st, ErrInvalidWeight
	}
	st.Options = opts
	return st, nil
}

// EditLabel replaces the label of option i.
func (st State) EditLabel(i int, label string) (State, error) {
	if err := st.checkMutable(); err != nil {
		return st, err
	}
	if err := st.checkIndex(i); err != nil {
		return st, err
	}
	label, err := NormalizeLabel(label)
	if err != nil {
		return st, err
	}
	st.Options = slices.Clone(st.Options)
	st.Options[i].Label = label
	return st, nil
}

// Reweight replaces the weight of option i.
func (st State) Reweight(i int, weight float64) (State, error) {
	if err := st.checkMutable(); err != nil {
		return st, err
	}
	if err := st.checkIndex(i); err != nil {
		return st, err
	}
	if !ValidWeight(weight) {
		return st, ErrInvalidWeight
	}
	opts := slices.Clone(st.Options)
	opts[i].Weight = weight
	if !finiteTotal(opts) {
		return st, ErrInvalidWeight
	}
	st.Options = opts
	return st, nil
}

// Move takes the option at from out of the sequence and reinserts it at to.
// Out-of-range or identical indices leave the state unchanged.
func (st State) Move(from, to int) (State, error) {
	if err := st.checkMutable(); err != nil {
		return st, err
	}
	n := len(st.Options)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return st, nil
	}
	opts := slices.Clone(st.Options)
	item := opts[from]
	opts = slices.Delete(opts, from, from+1)
	st.Options = slices.Insert(opts, to, item)
	return st, nil
}

// Remove deletes option i. The wheel may end up empty.
func (st State) Remove(i int) (State, error) {
	if err := st.checkMutable(); err != nil {
		return st, err
	}
	if err := st.checkIndex(i); err != nil {
		return st, err
	}
	st.Options = slices.Delete(slices.Clone(st.Options), i, i+1)
	return st, nil
}

// Reset restores defaults and forgets the last outcome. Rotation is kept so
// the wheel does not jump back visually.
func (st State) Reset(defaults []Option) (State, error) {
	if err := st.checkMutable(); err != nil {
		return st, err
	}
	st.Options = slices.Clone(defaults)
	st.Last = nil
	return st, nil
}

// BeginSpin moves an idle, non-empty wheel to Spinning. A wheel that is
// already spinning is returned unchanged with started == false.
func (st State) BeginSpin(rng RNG, now time.Time, duration time.Duration) (State, bool, error) {
	if st.Phase == Spinning {
		return st, false, nil
	}
	if st.Empty() {
		return st, false, ErrEmptySequence
	}
	delta := SpinTarget(rng)
	st.seq++
	st.Rotation += delta
	st.Phase = Spinning
	st.Pending = &Spin{
		Seq:       st.seq,
		Delta:     delta,
		Rotation:  st.Rotation,
		StartedAt: now,
		Duration:  duration,
	}
	return st, true, nil
}

// CompleteSpin resolves the pending spin identified by seq and returns the
// wheel to Idle. Each spin can be completed once.
func (st State) CompleteSpin(seq int, now time.Time) (State, Outcome, error) {
	if st.Phase != Spinning || st.Pending == nil {
		return st, Outcome{}, ErrNotSpinning
	}
	if seq != st.Pending.Seq {
		return st, Outcome{}, fmt.Errorf("%w: got %d, want %d", ErrSpinMismatch, seq, st.Pending.Seq)
	}
	i, err := Resolve(st.Options, st.Pending.Rotation)
	if err != nil {
		return st, Outcome{}, err
	}
	out := Outcome{
		Seq:          seq,
		Index:        i,
		Option:       st.Options[i],
		Rotation:     st.Pending.Rotation,
		PointerAngle: PointerAngle(st.Pending.Rotation),
		ResolvedAt:   now,
	}
	st.Phase = Idle
	st.Pending = nil
	st.Last = &out

	hist := append(slices.Clone(st.History), out)
	if len(hist) > HistorySize {
		hist = hist[len(hist)-HistorySize:]
	}
	st.History = hist
	return st, out, nil
}

// Overdue reports whether the pending spin's animation window has passed
// without a completion signal.
func (st State) Overdue(now time.Time) bool {
	if st.Phase != Spinning || st.Pending == nil {
		return false
	}
	return now.After(st.Pending.StartedAt.Add(st.Pending.Duration + SettleGrace))
}

// Settle completes an overdue spin. Otherwise the state is returned as is.
func (st State) Settle(now time.Time) (State, *Outcome) {
	if !st.Overdue(now) {
		return st, nil
	}
	next, out, err := st.CompleteSpin(st.Pending.Seq, now)
	if err != nil {
		return st, nil
	}
	return next, &out
}
