package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leojp04/drarea/internal/model"
)

func (s *Postgres) CreateUsuario(ctx context.Context, u *model.Usuario) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO usuarios (id, nome_completo, nome_usuario, email, cpf, password)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		u.ID, u.NomeCompleto, u.NomeUsuario, u.Email, u.CPF, u.Password,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (s *Postgres) ListUsuarios(ctx context.Context, f UsuarioFilter) ([]model.Usuario, error) {
	q := `SELECT id, nome_completo, nome_usuario, email, cpf, password, created_at, updated_at
	      FROM usuarios WHERE 1=1`
	args := []any{}

	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		q += fmt.Sprintf(" AND %s = $%d", col, len(args))
	}
	add("email", f.Email)
	add("nome_usuario", f.Username)
	add("nome_usuario", f.NomeUsuario)
	add("cpf", f.CPF)
	q += ` ORDER BY created_at`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Usuario{}
	for rows.Next() {
		var u model.Usuario
		if err := rows.Scan(&u.ID, &u.NomeCompleto, &u.NomeUsuario, &u.Email,
			&u.CPF, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Postgres) GetUsuario(ctx context.Context, id string) (*model.Usuario, error) {
	u := &model.Usuario{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, nome_completo, nome_usuario, email, cpf, password, created_at, updated_at
		 FROM usuarios WHERE id = $1`, id,
	).Scan(&u.ID, &u.NomeCompleto, &u.NomeUsuario, &u.Email,
		&u.CPF, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Postgres) UpdateUsuario(ctx context.Context, id string, p UsuarioPatch) (*model.Usuario, error) {
	q := `UPDATE usuarios SET updated_at = NOW()`
	args := []any{}

	set := func(col string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		q += fmt.Sprintf(", %s = $%d", col, len(args))
	}
	set("nome_completo", p.NomeCompleto)
	set("nome_usuario", p.NomeUsuario)
	set("email", p.Email)
	set("cpf", p.CPF)
	set("password", p.Password)

	args = append(args, id)
	q += fmt.Sprintf(` WHERE id = $%d
	      RETURNING id, nome_completo, nome_usuario, email, cpf, password, created_at, updated_at`,
		len(args))

	u := &model.Usuario{}
	err := s.pool.QueryRow(ctx, q, args...).Scan(&u.ID, &u.NomeCompleto, &u.NomeUsuario,
		&u.Email, &u.CPF, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Postgres) ReplaceUsuario(ctx context.Context, u *model.Usuario) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE usuarios
		 SET nome_completo=$1, nome_usuario=$2, email=$3, cpf=$4, password=$5, updated_at=NOW()
		 WHERE id=$6`,
		u.NomeCompleto, u.NomeUsuario, u.Email, u.CPF, u.Password, u.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteUsuario(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
