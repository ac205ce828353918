package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leojp04/drarea/internal/model"
	"github.com/leojp04/drarea/internal/store"
)

func (h *Handler) listUsuarios(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.UsuarioFilter{
		Email:       q.Get("email"),
		Username:    q.Get("username"),
		NomeUsuario: q.Get("nomeUsuario"),
		CPF:         q.Get("cpf"),
	}
	usuarios, err := h.store.ListUsuarios(r.Context(), f)
	if err != nil {
		h.log.Error("list usuarios", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, usuarios)
}

func (h *Handler) createUsuario(w http.ResponseWriter, r *http.Request) {
	var body model.UsuarioWire
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "json inválido")
		return
	}
	u := body.Normalize()
	if u.Email == "" {
		writeErr(w, http.StatusBadRequest, "email é obrigatório")
		return
	}
	u.ID = uuid.New().String()

	if err := h.store.CreateUsuario(r.Context(), &u); err != nil {
		h.log.Error("create usuario", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) getUsuario(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetUsuario(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	if err != nil {
		h.log.Error("get usuario", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// usuarioPatchBody accepts the canonical keys plus the legacy aliases the
// historical clients still send.
type usuarioPatchBody struct {
	NomeCompleto *string `json:"nomeCompleto"`
	Nome         *string `json:"nome"`
	Name         *string `json:"name"`
	NomeUsuario  *string `json:"nomeUsuario"`
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	CPF          *string `json:"cpf"`
	Password     *string `json:"password"`
}

func (b usuarioPatchBody) patch() store.UsuarioPatch {
	p := store.UsuarioPatch{
		Email:    b.Email,
		CPF:      b.CPF,
		Password: b.Password,
	}
	switch {
	case b.NomeCompleto != nil:
		p.NomeCompleto = b.NomeCompleto
	case b.Nome != nil:
		p.NomeCompleto = b.Nome
	case b.Name != nil:
		p.NomeCompleto = b.Name
	}
	switch {
	case b.NomeUsuario != nil:
		p.NomeUsuario = b.NomeUsuario
	case b.Username != nil:
		p.NomeUsuario = b.Username
	}
	return p
}

func (h *Handler) patchUsuario(w http.ResponseWriter, r *http.Request) {
	var body usuarioPatchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "json inválido")
		return
	}
	u, err := h.store.UpdateUsuario(r.Context(), chi.URLParam(r, "id"), body.patch())
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	if err != nil {
		h.log.Error("patch usuario", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) putUsuario(w http.ResponseWriter, r *http.Request) {
	var body model.UsuarioWire
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "json inválido")
		return
	}
	u := body.Normalize()
	u.ID = chi.URLParam(r, "id")

	err := h.store.ReplaceUsuario(r.Context(), &u)
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	if err != nil {
		h.log.Error("put usuario", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) deleteUsuario(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteUsuario(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "usuário não encontrado")
		return
	}
	if err != nil {
		h.log.Error("delete usuario", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
