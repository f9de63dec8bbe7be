package web

import (
	"net/http"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/i18n"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/report"
)

// GET /report.pdf
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tag := s.lang(w, r)
	v, err := s.update(ctx, w, r, func(v Visitor) (Visitor, error) { return v, nil })
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	p := s.preset(v)
	pr := i18n.Printer(tag)
	pdf, err := report.Generate(report.Input{
		Title:   p.Title,
		State:   v.Wheel,
		Palette: p.Palette(),
		Labels: report.Labels{
			Heading: pr.Sprintf(i18n.KeyTitle),
			Option:  pr.Sprintf(i18n.KeyReportOption),
			Weight:  pr.Sprintf(i18n.KeyReportWeight),
			Share:   pr.Sprintf(i18n.KeyReportShare),
			History: pr.Sprintf(i18n.KeyHistory),
			Empty:   pr.Sprintf(i18n.KeyEmptyWheel),
		},
	})
	if err != nil {
		s.logger().ErrorContext(ctx, "generate report", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="roleta.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		s.logger().ErrorContext(ctx, "write report", "error", err)
	}
}
