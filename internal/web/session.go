package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

// Visitor is everything kept for one browser session.
type Visitor struct {
	PresetID string
	Wheel    wheel.State
	// Notice is an i18n key shown once on the next page render.
	Notice string
}

func (s *Server) newVisitor(presetID string) (Visitor, error) {
	p, err := s.catalog().Lookup(presetID)
	if err != nil {
		return Visitor{}, err
	}
	return Visitor{PresetID: presetID, Wheel: wheel.NewState(p.Options)}, nil
}

func (s *Server) preset(v Visitor) wheel.Preset {
	p, err := s.catalog().Lookup(v.PresetID)
	if err != nil {
		p, _ = s.catalog().Lookup(s.catalog().Default)
	}
	return p
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// getOrCreateVisitor returns the session id for the request. A missing or
// unknown cookie gets a freshly minted id; client-chosen ids are never adopted.
func (s *Server) getOrCreateVisitor(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	if id := s.sessionID(r); id != "" {
		_, ok, err := s.Store.Get(ctx, id)
		if err != nil {
			return "", err
		}
		if ok {
			return id, nil
		}
	}
	id := s.Store.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	v, err := s.newVisitor(s.catalog().Default)
	if err != nil {
		return "", err
	}
	if err := s.Store.Put(ctx, id, v); err != nil {
		return "", err
	}
	s.logger().DebugContext(ctx, "session created", slog.String("preset", v.PresetID))
	return id, nil
}

// update runs fn against the visitor atomically. Overdue spins are settled
// first so an abandoned animation never leaves the wheel stuck.
func (s *Server) update(ctx context.Context, w http.ResponseWriter, r *http.Request, fn func(Visitor) (Visitor, error)) (Visitor, error) {
	id, err := s.getOrCreateVisitor(ctx, w, r)
	if err != nil {
		return Visitor{}, err
	}
	return s.Store.Update(ctx, id, func(v Visitor) (Visitor, error) {
		return fn(s.settle(ctx, v))
	})
}

func (s *Server) settle(ctx context.Context, v Visitor) Visitor {
	next, out := v.Wheel.Settle(s.now())
	if out != nil {
		s.logger().InfoContext(ctx, "overdue spin settled",
			slog.Int("seq", out.Seq),
			slog.String("label", out.Option.Label),
		)
		v.Wheel = next
	}
	return v
}
