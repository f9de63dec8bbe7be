package web

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/i18n"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

// PageViewModel feeds layout.html and wheel.html.
type PageViewModel struct {
	Lang     string
	Title    string
	Notice   string
	PresetID string
	Presets  []PresetOption
	Wheel    WheelView
	Options  []OptionView
	Spinning bool
	Pending  *PendingView
	Last     *OutcomeView
	History  []OutcomeView
	// SpinMS is the CSS transition length for new spins.
	SpinMS int64

	printer *message.Printer
}

// T translates key for the page language.
func (vm PageViewModel) T(key string, args ...any) string {
	return vm.printer.Sprintf(key, args...)
}

type PresetOption struct {
	ID       string
	Title    string
	Selected bool
}

// OptionView is one chip in the editor.
type OptionView struct {
	Index  int
	Label  string
	Weight string
	Share  float64
	Color  string
	First  bool
	Last   bool
}

// PendingView lets a reloaded page finish the spin already in flight.
type PendingView struct {
	Seq         int
	Rotation    float64
	RemainingMS int64
}

type OutcomeView struct {
	Seq   int
	Label string
	Index int
	At    string
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

func (s *Server) makeViewModel(v Visitor, tag language.Tag, notice string) PageViewModel {
	p := s.preset(v)
	palette := p.Palette()
	st := v.Wheel
	vm := PageViewModel{
		Lang:     tag.String(),
		Title:    p.Title,
		PresetID: v.PresetID,
		Wheel:    buildWheelView(st, palette),
		Spinning: st.Phase == wheel.Spinning,
		SpinMS:   s.spinDuration().Milliseconds(),
		printer:  i18n.Printer(tag),
	}
	if notice != "" {
		vm.Notice = vm.T(notice)
	}
	for _, id := range s.catalog().IDs() {
		vm.Presets = append(vm.Presets, PresetOption{
			ID:       id,
			Title:    s.catalog().Presets[id].Title,
			Selected: id == v.PresetID,
		})
	}

	total := st.TotalWeight()
	for i, o := range st.Options {
		vm.Options = append(vm.Options, OptionView{
			Index:  i,
			Label:  o.Label,
			Weight: formatWeight(o.Weight),
			Share:  o.Weight / total * 100,
			Color:  sliceColor(palette, i),
			First:  i == 0,
			Last:   i == len(st.Options)-1,
		})
	}

	if st.Pending != nil {
		remaining := st.Pending.StartedAt.Add(st.Pending.Duration).Sub(s.now())
		if remaining < 0 {
			remaining = 0
		}
		vm.Wheel.Rotation = st.Pending.Rotation - st.Pending.Delta
		vm.Pending = &PendingView{
			Seq:         st.Pending.Seq,
			Rotation:    st.Pending.Rotation,
			RemainingMS: remaining.Milliseconds(),
		}
	}
	if st.Last != nil {
		o := outcomeView(*st.Last)
		vm.Last = &o
	}
	for i := len(st.History) - 1; i >= 0; i-- {
		vm.History = append(vm.History, outcomeView(st.History[i]))
	}
	return vm
}

func outcomeView(o wheel.Outcome) OutcomeView {
	return OutcomeView{
		Seq:   o.Seq,
		Label: o.Option.Label,
		Index: o.Index,
		At:    o.ResolvedAt.Format(time.TimeOnly),
	}
}
