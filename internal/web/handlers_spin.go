package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/i18n"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/telemetry"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

var validate = validator.New()

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type sliceResponse struct {
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Color  string  `json:"color"`
}

type wheelResponse struct {
	Preset      string          `json:"preset"`
	Phase       string          `json:"phase"`
	Rotation    float64         `json:"rotation"`
	TotalWeight float64         `json:"total_weight"`
	Slices      []sliceResponse `json:"slices"`
	Pending     *spinResponse   `json:"pending,omitempty"`
}

type spinResponse struct {
	Started    bool    `json:"started"`
	Seq        int     `json:"seq"`
	Rotation   float64 `json:"rotation"`
	Delta      float64 `json:"delta"`
	DurationMS int64   `json:"duration_ms"`
}

type completeRequest struct {
	Seq int `json:"seq" validate:"gt=0"`
}

type outcomeResponse struct {
	Seq          int             `json:"seq"`
	Index        int             `json:"index"`
	Label        string          `json:"label"`
	Weight       float64         `json:"weight"`
	Rotation     float64         `json:"rotation"`
	PointerAngle float64         `json:"pointer_angle"`
	Message      string          `json:"message"`
	Confetti     []ConfettiPiece `json:"confetti"`
	ConfettiMS   int             `json:"confetti_ms"`
}

func pendingResponse(p *wheel.Spin, started bool) spinResponse {
	return spinResponse{
		Started:    started,
		Seq:        p.Seq,
		Rotation:   p.Rotation,
		Delta:      p.Delta,
		DurationMS: p.Duration.Milliseconds(),
	}
}

func (s *Server) apiError(w http.ResponseWriter, r *http.Request, err error) {
	key := noticeKey(err)
	msg := err.Error()
	if key != "" {
		msg = i18n.Printer(s.lang(w, r)).Sprintf(key)
	}
	render.Status(r, statusFor(err))
	render.JSON(w, r, errorResponse{Error: errorCode(err), Message: msg})
}

// GET /api/wheel
func (s *Server) handleWheelJSON(w http.ResponseWriter, r *http.Request) {
	v, err := s.update(r.Context(), w, r, func(v Visitor) (Visitor, error) { return v, nil })
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	palette := s.preset(v).Palette()
	st := v.Wheel
	resp := wheelResponse{
		Preset:      v.PresetID,
		Phase:       st.Phase.String(),
		Rotation:    st.Rotation,
		TotalWeight: st.TotalWeight(),
		Slices:      []sliceResponse{},
	}
	for _, sl := range st.Slices() {
		resp.Slices = append(resp.Slices, sliceResponse{
			Index:  sl.Index,
			Label:  sl.Option.Label,
			Weight: sl.Option.Weight,
			Start:  sl.Start,
			End:    sl.End,
			Color:  sliceColor(palette, sl.Index),
		})
	}
	if st.Pending != nil {
		p := pendingResponse(st.Pending, false)
		resp.Pending = &p
	}
	render.JSON(w, r, resp)
}

// POST /api/spin
// A spin requested while one is in flight is answered with the pending spin
// and started=false.
func (s *Server) handleSpin(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.Tracer().Start(r.Context(), "wheel.spin")
	defer span.End()

	var started bool
	v, err := s.update(ctx, w, r, func(v Visitor) (Visitor, error) {
		st, ok, err := v.Wheel.BeginSpin(s.rng(), s.now(), s.spinDuration())
		if err != nil {
			return v, err
		}
		started = ok
		v.Wheel = st
		return v, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger().InfoContext(ctx, "spin rejected", slog.String("error", err.Error()))
		s.apiError(w, r, err)
		return
	}

	p := v.Wheel.Pending
	span.SetAttributes(
		attribute.Bool("wheel.started", started),
		attribute.Int("wheel.seq", p.Seq),
		attribute.Float64("wheel.rotation", p.Rotation),
	)
	if started {
		s.logger().InfoContext(ctx, "spin started",
			slog.Int("seq", p.Seq),
			slog.Float64("delta", p.Delta),
			slog.Int("options", len(v.Wheel.Options)),
		)
	}
	render.JSON(w, r, pendingResponse(p, started))
}

// POST /api/spin/complete
func (s *Server) handleSpinComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.Tracer().Start(r.Context(), "wheel.complete")
	defer span.End()

	var req completeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "bad_request", Message: "failed to decode request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	id, err := s.getOrCreateVisitor(ctx, w, r)
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	var out wheel.Outcome
	v, err := s.Store.Update(ctx, id, func(v Visitor) (Visitor, error) {
		st, o, err := v.Wheel.CompleteSpin(req.Seq, s.now())
		if err != nil {
			return v, err
		}
		out = o
		v.Wheel = st
		return v, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger().InfoContext(ctx, "completion rejected", slog.Int("seq", req.Seq), slog.String("error", err.Error()))
		s.apiError(w, r, err)
		return
	}

	span.SetAttributes(
		attribute.Int("wheel.seq", out.Seq),
		attribute.String("wheel.label", out.Option.Label),
	)
	s.logger().InfoContext(ctx, "spin resolved",
		slog.Int("seq", out.Seq),
		slog.Int("index", out.Index),
		slog.String("label", out.Option.Label),
		slog.String("preset", v.PresetID),
	)
	render.JSON(w, r, outcomeResponse{
		Seq:          out.Seq,
		Index:        out.Index,
		Label:        out.Option.Label,
		Weight:       out.Option.Weight,
		Rotation:     out.Rotation,
		PointerAngle: out.PointerAngle,
		Message:      i18n.Printer(s.lang(w, r)).Sprintf(i18n.KeyWinner, out.Option.Label),
		Confetti:     Confetti(s.rng()),
		ConfettiMS:   ConfettiLifetimeMS,
	})
}
