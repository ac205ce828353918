package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leojp04/drarea/internal/model"
)

func (s *Postgres) CreateConsulta(ctx context.Context, c *model.Consulta) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO consultas
		   (id, cpf, nome_paciente, email, especialidade, tipo_terapia, dia_semana, data_iso, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING created_at, updated_at`,
		c.ID, c.CPF, c.NomePaciente, c.Email, c.Especialidade, c.TipoTerapia,
		c.DiaSemana, c.DataISO, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (s *Postgres) ListConsultas(ctx context.Context, cpf string) ([]model.Consulta, error) {
	q := `SELECT id, cpf, nome_paciente, email, especialidade, tipo_terapia,
	             dia_semana, data_iso, status, created_at, updated_at
	      FROM consultas`
	args := []any{}
	if cpf != "" {
		args = append(args, cpf)
		q += ` WHERE cpf = $1`
	}
	q += ` ORDER BY created_at`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Consulta{}
	for rows.Next() {
		var c model.Consulta
		if err := rows.Scan(&c.ID, &c.CPF, &c.NomePaciente, &c.Email, &c.Especialidade,
			&c.TipoTerapia, &c.DiaSemana, &c.DataISO, &c.Status,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Postgres) GetConsulta(ctx context.Context, id string) (*model.Consulta, error) {
	c := &model.Consulta{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, cpf, nome_paciente, email, especialidade, tipo_terapia,
		        dia_semana, data_iso, status, created_at, updated_at
		 FROM consultas WHERE id = $1`, id,
	).Scan(&c.ID, &c.CPF, &c.NomePaciente, &c.Email, &c.Especialidade,
		&c.TipoTerapia, &c.DiaSemana, &c.DataISO, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Postgres) UpdateConsulta(ctx context.Context, id string, p ConsultaPatch) (*model.Consulta, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// lock the row so the transition check and the update are one unit
	var status string
	err = tx.QueryRow(ctx,
		`SELECT status FROM consultas WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Status != nil && *p.Status != status && !model.CanTransition(status, *p.Status) {
		return nil, ErrInvalidTransition
	}

	q := `UPDATE consultas SET updated_at = NOW()`
	args := []any{}
	set := func(col string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		q += fmt.Sprintf(", %s = $%d", col, len(args))
	}
	set("nome_paciente", p.NomePaciente)
	set("email", p.Email)
	set("especialidade", p.Especialidade)
	set("tipo_terapia", p.TipoTerapia)
	set("dia_semana", p.DiaSemana)
	set("data_iso", p.DataISO)
	set("status", p.Status)

	args = append(args, id)
	q += fmt.Sprintf(` WHERE id = $%d
	      RETURNING id, cpf, nome_paciente, email, especialidade, tipo_terapia,
	                dia_semana, data_iso, status, created_at, updated_at`, len(args))

	c := &model.Consulta{}
	if err := tx.QueryRow(ctx, q, args...).Scan(&c.ID, &c.CPF, &c.NomePaciente, &c.Email,
		&c.Especialidade, &c.TipoTerapia, &c.DiaSemana, &c.DataISO, &c.Status,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
