package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/leojp04/drarea/internal/model"
)

// Memory is the map-backed Store. It is the default when no database DSN
// is configured and the fixture store for tests.
type Memory struct {
	mu        sync.RWMutex
	usuarios  map[string]model.Usuario
	consultas map[string]model.Consulta
}

func NewMemory() *Memory {
	return &Memory{
		usuarios:  make(map[string]model.Usuario),
		consultas: make(map[string]model.Consulta),
	}
}

func (m *Memory) CreateUsuario(_ context.Context, u *model.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.usuarios[u.ID] = *u
	return nil
}

func (m *Memory) ListUsuarios(_ context.Context, f UsuarioFilter) ([]model.Usuario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []model.Usuario{}
	for _, u := range m.usuarios {
		if f.Email != "" && u.Email != f.Email {
			continue
		}
		if f.Username != "" && u.NomeUsuario != f.Username {
			continue
		}
		if f.NomeUsuario != "" && u.NomeUsuario != f.NomeUsuario {
			continue
		}
		if f.CPF != "" && u.CPF != f.CPF {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) GetUsuario(_ context.Context, id string) (*model.Usuario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.usuarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) UpdateUsuario(_ context.Context, id string, p UsuarioPatch) (*model.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.usuarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.NomeCompleto != nil {
		u.NomeCompleto = *p.NomeCompleto
	}
	if p.NomeUsuario != nil {
		u.NomeUsuario = *p.NomeUsuario
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.CPF != nil {
		u.CPF = *p.CPF
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	u.UpdatedAt = time.Now().UTC()
	m.usuarios[id] = u
	return &u, nil
}

func (m *Memory) ReplaceUsuario(_ context.Context, u *model.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.usuarios[u.ID]
	if !ok {
		return ErrNotFound
	}
	u.CreatedAt = old.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	m.usuarios[u.ID] = *u
	return nil
}

func (m *Memory) DeleteUsuario(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.usuarios[id]; !ok {
		return ErrNotFound
	}
	delete(m.usuarios, id)
	return nil
}

func (m *Memory) CreateConsulta(_ context.Context, c *model.Consulta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.consultas[c.ID] = *c
	return nil
}

func (m *Memory) ListConsultas(_ context.Context, cpf string) ([]model.Consulta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []model.Consulta{}
	for _, c := range m.consultas {
		if cpf != "" && c.CPF != cpf {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) GetConsulta(_ context.Context, id string) (*model.Consulta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.consultas[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) UpdateConsulta(_ context.Context, id string, p ConsultaPatch) (*model.Consulta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.consultas[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Status != nil && *p.Status != c.Status {
		if !model.CanTransition(c.Status, *p.Status) {
			return nil, ErrInvalidTransition
		}
		c.Status = *p.Status
	}
	if p.NomePaciente != nil {
		c.NomePaciente = *p.NomePaciente
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Especialidade != nil {
		c.Especialidade = *p.Especialidade
	}
	if p.TipoTerapia != nil {
		c.TipoTerapia = *p.TipoTerapia
	}
	if p.DiaSemana != nil {
		c.DiaSemana = *p.DiaSemana
	}
	if p.DataISO != nil {
		c.DataISO = *p.DataISO
	}
	c.UpdatedAt = time.Now().UTC()
	m.consultas[id] = c
	return &c, nil
}
