package storefront

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GemsByMike/internal/i18n"
	"GemsByMike/pkg/kit"
)

const (
	langParam = "lang"

	// CreateLimitWindow is the window for Server.CreateLimiter.
	CreateLimitWindow = 60 * time.Second
)

type Server struct {
	Service       *Service
	DefaultLocale i18n.Locale
	CreateLimiter *kit.IPRateLimiter
	Log           *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	if s.CreateLimiter != nil {
		r.With(s.CreateLimiter.Middleware).Post("/", s.create)
	} else {
		r.Post("/", s.create)
	}
	r.Route("/{id}", func(rr chi.Router) {
		rr.Get("/", s.get)
		rr.Put("/query", s.search)
		rr.Post("/cart", s.addToCart)
		rr.Put("/locale", s.setLocale)
	})

	return r
}

// initialLocale prefers an explicit ?lang= and then Accept-Language.
func (s *Server) initialLocale(r *http.Request) i18n.Locale {
	if v := strings.TrimSpace(r.URL.Query().Get(langParam)); v != "" {
		if loc, err := i18n.Parse(v); err == nil {
			return loc
		}
	}
	if accept := r.Header.Get("Accept-Language"); strings.TrimSpace(accept) != "" {
		return i18n.Detect(accept)
	}
	if s.DefaultLocale.Valid() {
		return s.DefaultLocale
	}
	return i18n.Default
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	v, err := s.Service.NewSession(r.Context(), s.initialLocale(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+v.SessionID)
	kit.WriteJSON(w, http.StatusCreated, v)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	v, err := s.Service.View(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, v)
}

type queryReq struct {
	Query string `json:"query"`
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req queryReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	v, err := s.Service.Search(r.Context(), chi.URLParam(r, "id"), req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, v)
}

type addReq struct {
	ProductID int64 `json:"product_id"`
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	v, err := s.Service.Add(r.Context(), chi.URLParam(r, "id"), req.ProductID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, v)
}

type localeReq struct {
	Locale string `json:"locale"`
}

func (s *Server) setLocale(w http.ResponseWriter, r *http.Request) {
	var req localeReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	v, err := s.Service.ChangeLocale(r.Context(), chi.URLParam(r, "id"), req.Locale)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, v)
}

// StringsHandler serves the resolved string table for one locale.
func (s *Server) StringsHandler(w http.ResponseWriter, r *http.Request) {
	loc, err := i18n.Parse(chi.URLParam(r, "locale"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"locale":  loc,
		"strings": s.Service.Strings.Strings(loc),
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": chi.URLParam(r, "id")})
	case errors.Is(err, ErrUnknownProduct):
		kit.WriteError(w, r, http.StatusBadRequest, "unknown product", nil)
	case errors.Is(err, i18n.ErrInvalidLocale):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid locale", map[string]any{"supported": i18n.Supported()})
	default:
		if s.Log != nil {
			s.Log.Error("storefront request failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
