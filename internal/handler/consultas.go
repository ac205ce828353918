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

func (h *Handler) listConsultas(w http.ResponseWriter, r *http.Request) {
	consultas, err := h.store.ListConsultas(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		h.log.Error("list consultas", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, consultas)
}

func (h *Handler) createConsulta(w http.ResponseWriter, r *http.Request) {
	var c model.Consulta
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeErr(w, http.StatusBadRequest, "json inválido")
		return
	}
	if c.CPF == "" || c.NomePaciente == "" || c.DataISO == "" {
		writeErr(w, http.StatusBadRequest, "cpf, nomePaciente e dataISO são obrigatórios")
		return
	}
	if c.Status == "" {
		c.Status = model.StatusMarcada
	}
	c.ID = uuid.New().String()

	if err := h.store.CreateConsulta(r.Context(), &c); err != nil {
		h.log.Error("create consulta", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) getConsulta(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetConsulta(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "consulta não encontrada")
		return
	}
	if err != nil {
		h.log.Error("get consulta", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type consultaPatchBody struct {
	NomePaciente  *string `json:"nomePaciente"`
	Email         *string `json:"email"`
	Especialidade *string `json:"especialidade"`
	TipoTerapia   *string `json:"tipoTerapia"`
	DiaSemana     *string `json:"diaSemana"`
	DataISO       *string `json:"dataISO"`
	Status        *string `json:"status"`
}

func (h *Handler) patchConsulta(w http.ResponseWriter, r *http.Request) {
	var body consultaPatchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "json inválido")
		return
	}

	c, err := h.store.UpdateConsulta(r.Context(), chi.URLParam(r, "id"), store.ConsultaPatch{
		NomePaciente:  body.NomePaciente,
		Email:         body.Email,
		Especialidade: body.Especialidade,
		TipoTerapia:   body.TipoTerapia,
		DiaSemana:     body.DiaSemana,
		DataISO:       body.DataISO,
		Status:        body.Status,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "consulta não encontrada")
		return
	}
	if errors.Is(err, store.ErrInvalidTransition) {
		writeErr(w, http.StatusConflict, "transição de status inválida")
		return
	}
	if err != nil {
		h.log.Error("patch consulta", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "erro interno")
		return
	}
	writeJSON(w, http.StatusOK, c)
}
