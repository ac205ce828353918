// Package handler exposes the agenda backend's REST surface: /usuarios
// and /consultas, JSON bodies, PATCH with partial-update semantics.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/leojp04/drarea/internal/middleware"
	"github.com/leojp04/drarea/internal/store"
)

type Handler struct {
	store store.Store
	log   *zap.Logger
}

func New(st store.Store, log *zap.Logger) *Handler {
	return &Handler{store: st, log: log}
}

// Router builds the chi router. Mutating endpoints sit behind the rate
// limiter.
func (h *Handler) Router(rl *middleware.RateLimiter) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestLog(h.log))

	mux.Get("/health", h.handleHealth)

	mux.Get("/usuarios", h.listUsuarios)
	mux.Get("/usuarios/{id}", h.getUsuario)

	mux.Get("/consultas", h.listConsultas)
	mux.Get("/consultas/{id}", h.getConsulta)

	mux.Group(func(pr chi.Router) {
		pr.Use(middleware.RateLimit(rl))
		pr.Post("/usuarios", h.createUsuario)
		pr.Patch("/usuarios/{id}", h.patchUsuario)
		pr.Put("/usuarios/{id}", h.putUsuario)
		pr.Delete("/usuarios/{id}", h.deleteUsuario)

		pr.Post("/consultas", h.createConsulta)
		pr.Patch("/consultas/{id}", h.patchConsulta)
	})

	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
