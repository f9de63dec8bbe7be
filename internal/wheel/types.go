package wheel

import "time"

// Option is a labeled, weighted choice on the wheel.
type Option struct {
	Label  string  `yaml:"label" json:"label" validate:"required,max=64"`
	Weight float64 `yaml:"weight" json:"weight" validate:"gt=0"`
}

// Slice is the angular interval [Start, End) assigned to one option.
type Slice struct {
	Option Option
	Index  int
	Start  float64
	End    float64
}

// Width returns the angular width of the slice in degrees.
func (s Slice) Width() float64 { return s.End - s.Start }

// Mid returns the angle halfway through the slice, used to place labels.
func (s Slice) Mid() float64 { return s.Start + s.Width()/2 }

// Phase is the externally visible state of a wheel.
type Phase int

const (
	Idle Phase = iota
	Spinning
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// Spin describes a spin in flight. Rotation is the cumulative rotation the
// animator must reach; Delta is what this spin added to it.
type Spin struct {
	Seq       int
	Delta     float64
	Rotation  float64
	StartedAt time.Time
	Duration  time.Duration
}

// Outcome is a resolved spin.
type Outcome struct {
	Seq          int
	Index        int
	Option       Option
	Rotation     float64
	PointerAngle float64
	ResolvedAt   time.Time
}

// State is the full state of one wheel. Methods never mutate the receiver's
// option slice in place, so copies of a State can be handed around freely.
type State struct {
	Options  []Option
	Rotation float64
	Phase    Phase
	Pending  *Spin
	Last     *Outcome
	History  []Outcome
	seq      int
}
