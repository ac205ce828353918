package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leojp04/drarea/internal/model"
	"github.com/leojp04/drarea/internal/store"
)

func strptr(s string) *string { return &s }

func seedConsulta(t *testing.T, m *store.Memory) *model.Consulta {
	t.Helper()
	c := &model.Consulta{
		ID:           "c1",
		CPF:          "390.533.447-05",
		NomePaciente: "Ana Souza",
		DataISO:      "2026-09-14T10:00",
		Status:       model.StatusMarcada,
	}
	require.NoError(t, m.CreateConsulta(context.Background(), c))
	return c
}

func TestUpdateConsultaPartial(t *testing.T) {
	m := store.NewMemory()
	c := seedConsulta(t, m)

	got, err := m.UpdateConsulta(context.Background(), c.ID, store.ConsultaPatch{
		DataISO: strptr("2026-10-05T15:30"),
		Status:  strptr(model.StatusRemarcada),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-05T15:30", got.DataISO)
	assert.Equal(t, model.StatusRemarcada, got.Status)
	assert.Equal(t, "Ana Souza", got.NomePaciente)
}

func TestUpdateConsultaRejectsInvalidTransition(t *testing.T) {
	m := store.NewMemory()
	c := seedConsulta(t, m)

	_, err := m.UpdateConsulta(context.Background(), c.ID, store.ConsultaPatch{
		Status: strptr(model.StatusCancelada),
	})
	require.NoError(t, err)

	_, err = m.UpdateConsulta(context.Background(), c.ID, store.ConsultaPatch{
		Status: strptr(model.StatusRemarcada),
	})
	assert.ErrorIs(t, err, store.ErrInvalidTransition)

	// same-status patch is not a transition
	got, err := m.UpdateConsulta(context.Background(), c.ID, store.ConsultaPatch{
		Status: strptr(model.StatusCancelada),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelada, got.Status)
}

func TestUpdateConsultaNotFound(t *testing.T) {
	m := store.NewMemory()
	_, err := m.UpdateConsulta(context.Background(), "nope", store.ConsultaPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsuarioFilterMatchesAllSetFields(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.CreateUsuario(context.Background(), &model.Usuario{
		ID: "u1", Email: "ana@x.com", NomeUsuario: "anasouza", CPF: "390.533.447-05",
	}))
	require.NoError(t, m.CreateUsuario(context.Background(), &model.Usuario{
		ID: "u2", Email: "bruno@x.com", NomeUsuario: "brunol",
	}))

	got, err := m.ListUsuarios(context.Background(), store.UsuarioFilter{Email: "ana@x.com"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].ID)

	got, err = m.ListUsuarios(context.Background(), store.UsuarioFilter{Username: "brunol"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	got, err = m.ListUsuarios(context.Background(), store.UsuarioFilter{
		Email: "ana@x.com", CPF: "000.000.000-00",
	})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.ListUsuarios(context.Background(), store.UsuarioFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteUsuario(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.CreateUsuario(context.Background(), &model.Usuario{ID: "u1", Email: "a@x.com"}))
	require.NoError(t, m.DeleteUsuario(context.Background(), "u1"))
	assert.ErrorIs(t, m.DeleteUsuario(context.Background(), "u1"), store.ErrNotFound)
}
