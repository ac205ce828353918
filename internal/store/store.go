// Package store persists usuarios and consultas for the agenda backend.
// Two implementations exist: Postgres (pgx) for real deployments and an
// in-memory map store that stands in for the json-server style mock and
// backs the test suite.
package store

import (
	"context"
	"errors"

	"github.com/leojp04/drarea/internal/model"
)

var (
	ErrNotFound = errors.New("registro não encontrado")
	// ErrInvalidTransition means the requested status change is not allowed
	// by the consulta state machine (cancelada is terminal).
	ErrInvalidTransition = errors.New("transição de status inválida")
)

// UsuarioFilter narrows ListUsuarios. Empty fields match everything.
// Username and NomeUsuario both filter the canonical nomeUsuario column;
// they are distinct query keys for legacy clients.
type UsuarioFilter struct {
	Email       string
	Username    string
	NomeUsuario string
	CPF         string
}

// UsuarioPatch carries partial updates; nil fields stay untouched.
type UsuarioPatch struct {
	NomeCompleto *string
	NomeUsuario  *string
	Email        *string
	CPF          *string
	Password     *string
}

// ConsultaPatch carries partial updates; nil fields stay untouched.
type ConsultaPatch struct {
	NomePaciente  *string
	Email         *string
	Especialidade *string
	TipoTerapia   *string
	DiaSemana     *string
	DataISO       *string
	Status        *string
}

type Store interface {
	CreateUsuario(ctx context.Context, u *model.Usuario) error
	ListUsuarios(ctx context.Context, f UsuarioFilter) ([]model.Usuario, error)
	GetUsuario(ctx context.Context, id string) (*model.Usuario, error)
	UpdateUsuario(ctx context.Context, id string, p UsuarioPatch) (*model.Usuario, error)
	ReplaceUsuario(ctx context.Context, u *model.Usuario) error
	DeleteUsuario(ctx context.Context, id string) error

	CreateConsulta(ctx context.Context, c *model.Consulta) error
	ListConsultas(ctx context.Context, cpf string) ([]model.Consulta, error)
	GetConsulta(ctx context.Context, id string) (*model.Consulta, error)
	UpdateConsulta(ctx context.Context, id string, p ConsultaPatch) (*model.Consulta, error)
}
