package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

// mutate applies op to the visitor's wheel and sends the browser back to the
// page. A rejected edit leaves the wheel as it was and becomes a notice.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, name string, op func(Visitor) (Visitor, error)) {
	ctx := r.Context()
	log := s.logger().With(slog.String("op", name))

	_, err := s.update(ctx, w, r, func(v Visitor) (Visitor, error) {
		next, err := op(v)
		if err != nil {
			log.InfoContext(ctx, "edit rejected", slog.String("error", err.Error()))
			v.Notice = noticeKey(err)
			return v, nil
		}
		log.DebugContext(ctx, "edit applied", slog.Int("options", len(next.Wheel.Options)))
		next.Notice = ""
		return next, nil
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to save state", slog.String("error", err.Error()))
		http.Error(w, "failed to save state", 500)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// wheelOp lifts a wheel mutation to a Visitor mutation.
func wheelOp(fn func(wheel.State) (wheel.State, error)) func(Visitor) (Visitor, error) {
	return func(v Visitor) (Visitor, error) {
		st, err := fn(v.Wheel)
		if err != nil {
			return v, err
		}
		v.Wheel = st
		return v, nil
	}
}

func pathIndex(r *http.Request) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, wheel.ErrInvalidIndex
	}
	return i, nil
}

// formWeight reads the weight field. An absent field means DefaultWeight.
func formWeight(r *http.Request) (float64, error) {
	raw := r.PostFormValue("weight")
	if raw == "" {
		return wheel.DefaultWeight, nil
	}
	return wheel.ParseWeight(raw)
}

// POST /options
func (s *Server) handleAddOption(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	s.mutate(w, r, "add", wheelOp(func(st wheel.State) (wheel.State, error) {
		weight, err := formWeight(r)
		if err != nil {
			return st, err
		}
		return st.Add(r.PostFormValue("label"), weight)
	}))
}

// POST /options/{index}/label
func (s *Server) handleEditLabel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	s.mutate(w, r, "edit_label", wheelOp(func(st wheel.State) (wheel.State, error) {
		i, err := pathIndex(r)
		if err != nil {
			return st, err
		}
		return st.EditLabel(i, r.PostFormValue("label"))
	}))
}

// POST /options/{index}/weight
func (s *Server) handleReweight(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	s.mutate(w, r, "reweight", wheelOp(func(st wheel.State) (wheel.State, error) {
		i, err := pathIndex(r)
		if err != nil {
			return st, err
		}
		weight, err := wheel.ParseWeight(r.PostFormValue("weight"))
		if err != nil {
			return st, err
		}
		return st.Reweight(i, weight)
	}))
}

// POST /options/{index}/delete
func (s *Server) handleRemoveOption(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "remove", wheelOp(func(st wheel.State) (wheel.State, error) {
		i, err := pathIndex(r)
		if err != nil {
			return st, err
		}
		return st.Remove(i)
	}))
}

// POST /options/move
// Unparsable indices are treated like out-of-range ones: nothing moves.
func (s *Server) handleMoveOption(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	from, errFrom := strconv.Atoi(r.PostFormValue("from"))
	to, errTo := strconv.Atoi(r.PostFormValue("to"))
	s.mutate(w, r, "move", wheelOp(func(st wheel.State) (wheel.State, error) {
		if errFrom != nil || errTo != nil {
			return st, nil
		}
		return st.Move(from, to)
	}))
}

// POST /reset
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, "reset", func(v Visitor) (Visitor, error) {
		st, err := v.Wheel.Reset(s.preset(v).Options)
		if err != nil {
			return v, err
		}
		v.Wheel = st
		return v, nil
	})
}

// POST /preset
// Switching presets loads its options as the new defaults.
func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	id := r.PostFormValue("preset")
	s.mutate(w, r, "preset", func(v Visitor) (Visitor, error) {
		p, err := s.catalog().Lookup(id)
		if err != nil {
			return v, err
		}
		st, err := v.Wheel.Reset(p.Options)
		if err != nil {
			return v, err
		}
		v.PresetID = id
		v.Wheel = st
		return v, nil
	})
}
