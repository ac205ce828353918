package model

import "time"

// Usuario is the canonical user record. Legacy payloads carry the same data
// under alternate keys (nome/name, username); Normalize folds those into the
// canonical fields once, at the service boundary.
type Usuario struct {
	ID           string `json:"id"`
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	NomeUsuario  string `json:"nomeUsuario,omitempty"`
	Email        string `json:"email"`
	CPF          string `json:"cpf,omitempty"`
	// stored in plaintext; the mock store is not a trust boundary
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// UsuarioWire is the loose shape accepted on the wire, with every legacy
// alias the historical frontends used interchangeably.
type UsuarioWire struct {
	ID           string `json:"id"`
	Nome         string `json:"nome,omitempty"`
	Name         string `json:"name,omitempty"`
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	Username     string `json:"username,omitempty"`
	NomeUsuario  string `json:"nomeUsuario,omitempty"`
	Email        string `json:"email"`
	CPF          string `json:"cpf,omitempty"`
	Password     string `json:"password,omitempty"`
}

// Normalize resolves the legacy aliases into a canonical Usuario.
// Preference order mirrors the historical fallback chains:
// nomeCompleto > nome > name, and nomeUsuario > username.
func (w UsuarioWire) Normalize() Usuario {
	nome := w.NomeCompleto
	if nome == "" {
		nome = w.Nome
	}
	if nome == "" {
		nome = w.Name
	}
	usuario := w.NomeUsuario
	if usuario == "" {
		usuario = w.Username
	}
	return Usuario{
		ID:           w.ID,
		NomeCompleto: nome,
		NomeUsuario:  usuario,
		Email:        w.Email,
		CPF:          w.CPF,
		Password:     w.Password,
	}
}

// Consulta statuses.
const (
	StatusMarcada   = "marcada"
	StatusRemarcada = "remarcada"
	StatusCancelada = "cancelada"
)

// Especialidades offered.
var Especialidades = []string{
	"fisioterapia",
	"psicologia",
	"terapia ocupacional",
	"fonoaudiologia",
	"ortopedia",
}

// TiposTerapia offered.
var TiposTerapia = []string{"individual", "grupo"}

// DiasSemana bookable (weekdays only).
var DiasSemana = []string{
	"segunda-feira",
	"terca-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
}

// Consulta is a scheduled therapy session keyed by the owner's CPF.
// DataISO stays a string because that is the wire format; ParseData gives
// the time.Time view.
type Consulta struct {
	ID            string    `json:"id"`
	CPF           string    `json:"cpf"`
	NomePaciente  string    `json:"nomePaciente"`
	Email         string    `json:"email"`
	Especialidade string    `json:"especialidade"`
	TipoTerapia   string    `json:"tipoTerapia"`
	DiaSemana     string    `json:"diaSemana,omitempty"`
	DataISO       string    `json:"dataISO"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// Ativa reports whether the consulta still occupies the CPF's single
// active slot.
func (c Consulta) Ativa() bool {
	return c.Status != StatusCancelada
}

// ParseData parses DataISO. Both full RFC 3339 and the shorter
// datetime-local form (no zone, no seconds) are accepted.
func (c Consulta) ParseData() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, c.DataISO); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", c.DataISO)
}

// CanTransition reports whether a consulta may move between statuses:
// marcada -> remarcada (repeatable), marcada|remarcada -> cancelada.
// cancelada is terminal.
func CanTransition(from, to string) bool {
	switch to {
	case StatusRemarcada, StatusCancelada:
		return from == StatusMarcada || from == StatusRemarcada
	default:
		return false
	}
}
