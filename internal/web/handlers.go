package web

import (
	"net/http"
)

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	tag := s.lang(w, r)

	var notice string
	v, err := s.update(ctx, w, r, func(v Visitor) (Visitor, error) {
		notice, v.Notice = v.Notice, ""
		return v, nil
	})
	if err != nil {
		http.Error(w, "failed to load session", 500)
		return
	}

	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", s.makeViewModel(v, tag, notice)); err != nil {
		s.logger().ErrorContext(ctx, "render page", "error", err)
		http.Error(w, "failed to render template", 500)
		return
	}
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
