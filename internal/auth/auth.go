// Package auth runs the login, signup and logout flows. Credentials are
// compared in plaintext against the mock store; this mirrors the backend
// contract and is not a real trust boundary.
package auth

import (
	"context"
	"errors"

	"github.com/leojp04/drarea/internal/model"
	"github.com/leojp04/drarea/internal/session"
	"github.com/leojp04/drarea/internal/usuario"
)

var (
	ErrUsuarioNaoEncontrado = errors.New("Usuário não encontrado.")
	ErrSenhaIncorreta       = errors.New("Senha incorreta.")
	ErrEmailCadastrado      = errors.New("E-mail já cadastrado.")
	ErrCPFCadastrado        = errors.New("CPF já cadastrado.")
)

type Flow struct {
	usuarios *usuario.Service
	session  *session.Store
}

func NewFlow(us *usuario.Service, st *session.Store) *Flow {
	return &Flow{usuarios: us, session: st}
}

// Login resolves the identifier through the legacy lookup chain, compares
// the password and persists the session on success. The two failure modes
// stay distinct ("not found" vs "wrong password") and reveal nothing else.
func (f *Flow) Login(ctx context.Context, login, senha string) (*model.Usuario, error) {
	u, err := f.usuarios.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	if u.Password != senha {
		return nil, ErrSenhaIncorreta
	}
	if err := f.session.Persist(*u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	NomeCompleto string
	Email        string
	CPF          string
	Password     string
}

// Signup refuses duplicate e-mails, then duplicate CPFs, then creates the
// user. The caller returns to login mode preserving the e-mail; no session
// is persisted here.
func (f *Flow) Signup(ctx context.Context, in SignupInput) (*model.Usuario, error) {
	existente, err := f.usuarios.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrEmailCadastrado
	}

	if in.CPF != "" {
		existente, err = f.usuarios.FindByCPF(ctx, in.CPF)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, ErrCPFCadastrado
		}
	}

	return f.usuarios.Create(ctx, usuario.CreateInput{
		NomeCompleto: in.NomeCompleto,
		Email:        in.Email,
		CPF:          in.CPF,
		Password:     in.Password,
	})
}

// Logout clears the session. Clearing an absent session is fine.
func (f *Flow) Logout() error {
	return f.session.Clear()
}

// Current returns the session user, nil when unauthenticated.
func (f *Flow) Current() *model.Usuario {
	return f.session.Read()
}

// ChangePassword verifies the current password, saves the new one on the
// backend and refreshes the session record.
func (f *Flow) ChangePassword(ctx context.Context, atual, nova string) error {
	u := f.session.Read()
	if u == nil {
		return ErrUsuarioNaoEncontrado
	}
	if u.Password != atual {
		return errors.New("Senha atual incorreta.")
	}
	updated, err := f.usuarios.UpdatePassword(ctx, u.ID, nova)
	if err != nil {
		return err
	}
	return f.session.Persist(*updated)
}
