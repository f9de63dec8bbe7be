package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"golang.org/x/text/language"

	"github.com/kaiobatista/roleta-neurocopa2025/internal/i18n"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/session"
	"github.com/kaiobatista/roleta-neurocopa2025/internal/wheel"
)

// Server serves the wheel page, its form posts and the JSON spin API.
type Server struct {
	Catalog *wheel.Catalog
	Store   session.Store[Visitor]
	Tmpl    *template.Template
	RNG     wheel.RNG
	Log     *slog.Logger

	SpinDuration   time.Duration
	DefaultLang    language.Tag
	AllowedOrigins []string
	StaticDir      string

	// Now is stubbed in tests.
	Now func() time.Time
}

const (
	cookieName          = "roleta_sid"
	defaultSpinDuration = 6 * time.Second
	assetCacheControl   = "public, max-age=3600"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger()))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/report.pdf", s.handleReport)

	r.Post("/options", s.handleAddOption)
	r.Post("/options/move", s.handleMoveOption)
	r.Post("/options/{index}/label", s.handleEditLabel)
	r.Post("/options/{index}/weight", s.handleReweight)
	r.Post("/options/{index}/delete", s.handleRemoveOption)
	r.Post("/reset", s.handleReset)
	r.Post("/preset", s.handlePreset)

	r.Route("/api", func(r chi.Router) {
		if len(s.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   s.AllowedOrigins,
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: true,
				MaxAge:           60 * 15,
			}))
		}
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/wheel", s.handleWheelJSON)
		r.Post("/spin", s.handleSpin)
		r.Post("/spin/complete", s.handleSpinComplete)
	})

	dir := s.StaticDir
	if dir == "" {
		dir = "static"
	}
	r.Handle("/static/*", staticHandler(dir))
	return r
}

func staticHandler(dir string) http.Handler {
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", assetCacheControl)
		fs.ServeHTTP(w, r)
	})
}

func (s *Server) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Server) rng() wheel.RNG {
	if s.RNG == nil {
		return wheel.StdRNG{}
	}
	return s.RNG
}

func (s *Server) spinDuration() time.Duration {
	if s.SpinDuration <= 0 {
		return defaultSpinDuration
	}
	return s.SpinDuration
}

func (s *Server) catalog() *wheel.Catalog {
	if s.Catalog == nil {
		return wheel.BuiltinCatalog()
	}
	return s.Catalog
}

// lang resolves the request language and remembers an explicit choice.
func (s *Server) lang(w http.ResponseWriter, r *http.Request) language.Tag {
	def := s.DefaultLang
	if def == (language.Tag{}) {
		def = i18n.PortugueseBR
	}
	tag, persist := i18n.ResolveTag(r, def)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return tag
}
