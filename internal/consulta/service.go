// Package consulta drives the appointment lifecycle against the agenda
// backend: list by CPF, create behind the one-active-consulta gate,
// reschedule and cancel. The conflict gate is client-enforced; the
// backend never refuses a duplicate on its own, so the existence check
// must happen before any write.
package consulta

import (
	"context"
	"errors"
	"net/url"

	"github.com/leojp04/drarea/internal/api"
	"github.com/leojp04/drarea/internal/model"
)

var (
	// ErrConsultaAtiva refuses a booking for a CPF that already holds a
	// non-cancelled consulta.
	ErrConsultaAtiva = errors.New("Já existe uma consulta ativa vinculada a este CPF.")
	// ErrConsultaCancelada refuses rescheduling a terminal consulta.
	ErrConsultaCancelada = errors.New("Não é possível remarcar uma consulta cancelada.")
)

type Service struct {
	api *api.Client
}

func NewService(c *api.Client) *Service {
	return &Service{api: c}
}

// ListByCPF fetches every consulta owned by cpf, active or not.
func (s *Service) ListByCPF(ctx context.Context, cpf string) ([]model.Consulta, error) {
	var out []model.Consulta
	if err := s.api.Get(ctx, "/consultas?cpf="+url.QueryEscape(cpf), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one consulta by id.
func (s *Service) Get(ctx context.Context, id string) (*model.Consulta, error) {
	var out model.Consulta
	if err := s.api.Get(ctx, "/consultas/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInput carries the schedule form fields.
type CreateInput struct {
	CPF           string `json:"cpf"`
	NomePaciente  string `json:"nomePaciente"`
	Email         string `json:"email"`
	Especialidade string `json:"especialidade"`
	TipoTerapia   string `json:"tipoTerapia"`
	DiaSemana     string `json:"diaSemana,omitempty"`
	DataISO       string `json:"dataISO"`
	Status        string `json:"status"`
}

// Create books a consulta. A CPF holding any non-cancelled consulta is
// refused with ErrConsultaAtiva before anything is written. The check and
// the write are two requests, so two concurrent clients can still race;
// the backend keeps both and the profile view shows the duplicate.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Consulta, error) {
	existentes, err := s.ListByCPF(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	for _, c := range existentes {
		if c.Ativa() {
			return nil, ErrConsultaAtiva
		}
	}

	in.Status = model.StatusMarcada
	var out model.Consulta
	if err := s.api.Post(ctx, "/consultas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reschedule moves a consulta to a new date-time, marking it remarcada.
// Cancelled consultas are terminal and cannot be moved.
func (s *Service) Reschedule(ctx context.Context, id, dataISO string) (*model.Consulta, error) {
	atual, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual.Status == model.StatusCancelada {
		return nil, ErrConsultaCancelada
	}

	patch := map[string]string{
		"dataISO": dataISO,
		"status":  model.StatusRemarcada,
	}
	var out model.Consulta
	if err := s.api.Patch(ctx, "/consultas/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel marks a consulta cancelada. The record is never deleted; it stays
// visible in history. Cancelling an already-cancelled consulta is a no-op
// that returns the record unchanged.
func (s *Service) Cancel(ctx context.Context, id string) (*model.Consulta, error) {
	atual, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual.Status == model.StatusCancelada {
		return atual, nil
	}

	patch := map[string]string{"status": model.StatusCancelada}
	var out model.Consulta
	if err := s.api.Patch(ctx, "/consultas/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
