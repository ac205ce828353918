// Package usuario wraps the /usuarios resource: the directory CRUD view
// and the lookups the login flow needs. Every record crossing this
// boundary is normalized from the legacy wire shapes into the canonical
// Usuario, so fallback chains never leak into callers.
package usuario

import (
	"context"
	"net/url"

	"github.com/leojp04/drarea/internal/api"
	"github.com/leojp04/drarea/internal/model"
)

type Service struct {
	api *api.Client
}

func NewService(c *api.Client) *Service {
	return &Service{api: c}
}

func (s *Service) List(ctx context.Context) ([]model.Usuario, error) {
	return s.query(ctx, "/usuarios")
}

func (s *Service) Get(ctx context.Context, id string) (*model.Usuario, error) {
	var w model.UsuarioWire
	if err := s.api.Get(ctx, "/usuarios/"+url.PathEscape(id), &w); err != nil {
		return nil, err
	}
	u := w.Normalize()
	return &u, nil
}

// FindByEmail returns the user with that e-mail, or nil when none exists.
func (s *Service) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return s.queryOne(ctx, "/usuarios?email="+url.QueryEscape(email))
}

// FindByCPF returns the user with that CPF, or nil when none exists.
func (s *Service) FindByCPF(ctx context.Context, cpf string) (*model.Usuario, error) {
	return s.queryOne(ctx, "/usuarios?cpf="+url.QueryEscape(cpf))
}

// FindByLogin resolves a login identifier through the legacy lookup chain:
// email, then username, then nomeUsuario. First match wins.
func (s *Service) FindByLogin(ctx context.Context, login string) (*model.Usuario, error) {
	esc := url.QueryEscape(login)
	for _, q := range []string{"email=", "username=", "nomeUsuario="} {
		u, err := s.queryOne(ctx, "/usuarios?"+q+esc)
		if err != nil {
			return nil, err
		}
		if u != nil {
			return u, nil
		}
	}
	return nil, nil
}

// CreateInput carries the signup form fields.
type CreateInput struct {
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	NomeUsuario  string `json:"nomeUsuario,omitempty"`
	Email        string `json:"email"`
	CPF          string `json:"cpf,omitempty"`
	Password     string `json:"password,omitempty"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Usuario, error) {
	var w model.UsuarioWire
	if err := s.api.Post(ctx, "/usuarios", in, &w); err != nil {
		return nil, err
	}
	u := w.Normalize()
	return &u, nil
}

// UpdatePassword saves a new password on the user record.
func (s *Service) UpdatePassword(ctx context.Context, id, password string) (*model.Usuario, error) {
	return s.patch(ctx, id, map[string]string{"password": password})
}

// UpdateNome saves a new display name on the user record.
func (s *Service) UpdateNome(ctx context.Context, id, nome string) (*model.Usuario, error) {
	return s.patch(ctx, id, map[string]string{"nomeCompleto": nome})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/usuarios/"+url.PathEscape(id))
}

func (s *Service) patch(ctx context.Context, id string, body map[string]string) (*model.Usuario, error) {
	var w model.UsuarioWire
	if err := s.api.Patch(ctx, "/usuarios/"+url.PathEscape(id), body, &w); err != nil {
		return nil, err
	}
	u := w.Normalize()
	return &u, nil
}

func (s *Service) query(ctx context.Context, path string) ([]model.Usuario, error) {
	var wires []model.UsuarioWire
	if err := s.api.Get(ctx, path, &wires); err != nil {
		return nil, err
	}
	out := make([]model.Usuario, len(wires))
	for i, w := range wires {
		out[i] = w.Normalize()
	}
	return out, nil
}

func (s *Service) queryOne(ctx context.Context, path string) (*model.Usuario, error) {
	matches, err := s.query(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}
