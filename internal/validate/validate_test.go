package validate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leojp04/drarea/internal/model"
	"github.com/leojp04/drarea/internal/validate"
)

func nomeField() validate.Field {
	return validate.Field{
		Name:        "nomeCompleto",
		Required:    true,
		RequiredMsg: "Informe o nome completo.",
		MinLen:      3,
		MinLenMsg:   "Informe ao menos 3 caracteres.",
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	s := validate.Schema{Fields: []validate.Field{nomeField()}}

	errs := s.Validate(map[string]string{"nomeCompleto": ""})
	assert.Equal(t, "Informe o nome completo.", errs["nomeCompleto"])

	errs = s.Validate(map[string]string{"nomeCompleto": "Jo"})
	assert.Equal(t, "Informe ao menos 3 caracteres.", errs["nomeCompleto"])

	errs = s.Validate(map[string]string{"nomeCompleto": "Joana Prado"})
	assert.True(t, errs.Valid())
}

func TestOptionalEmptyFieldSkipsRules(t *testing.T) {
	s := validate.Schema{Fields: []validate.Field{{
		Name:       "cpf",
		Pattern:    validate.CPFPattern,
		PatternMsg: "CPF invalido.",
	}}}

	assert.True(t, s.Validate(map[string]string{"cpf": ""}).Valid())
	assert.Equal(t, "CPF invalido.", s.Validate(map[string]string{"cpf": "123"})["cpf"])
}

func TestEnumMembership(t *testing.T) {
	s := validate.Schema{Fields: []validate.Field{{
		Name:        "especialidade",
		Required:    true,
		RequiredMsg: "Selecione uma especialidade.",
		OneOf:       model.Especialidades,
		OneOfMsg:    "Selecione uma especialidade.",
	}}}

	assert.True(t, s.Validate(map[string]string{"especialidade": "fisioterapia"}).Valid())
	assert.Equal(t, "Selecione uma especialidade.",
		s.Validate(map[string]string{"especialidade": "cardiologia"})["especialidade"])
}

func TestRefinementRunsOnlyAfterFieldsPass(t *testing.T) {
	s := validate.Schema{
		Fields: []validate.Field{
			{Name: "novaSenha", Required: true, RequiredMsg: "Informe a nova senha.",
				MinLen: 6, MinLenMsg: "A senha deve ter ao menos 6 caracteres."},
			{Name: "confirmarSenha", Required: true, RequiredMsg: "Confirme a nova senha.",
				MinLen: 6, MinLenMsg: "A confirmacao deve ter ao menos 6 caracteres."},
		},
		Refinements: []validate.Refinement{{
			Fields: []string{"novaSenha", "confirmarSenha"},
			Target: "confirmarSenha",
			Check: func(v map[string]string) string {
				if v["novaSenha"] != v["confirmarSenha"] {
					return "As senhas precisam coincidir."
				}
				return ""
			},
		}},
	}

	// confirm field still failing its own rules: refinement must not run
	errs := s.Validate(map[string]string{"novaSenha": "segredo1", "confirmarSenha": "abc"})
	assert.Equal(t, "A confirmacao deve ter ao menos 6 caracteres.", errs["confirmarSenha"])

	errs = s.Validate(map[string]string{"novaSenha": "segredo1", "confirmarSenha": "segredo2"})
	assert.Equal(t, "As senhas precisam coincidir.", errs["confirmarSenha"])

	errs = s.Validate(map[string]string{"novaSenha": "segredo1", "confirmarSenha": "segredo1"})
	assert.True(t, errs.Valid())
}

func TestCustomCheckRunsLast(t *testing.T) {
	s := validate.Schema{Fields: []validate.Field{{
		Name:       "email",
		Pattern:    regexp.MustCompile(`@`),
		PatternMsg: "Informe um e-mail valido.",
		Check: func(v string) string {
			if v == "banido@x.com" {
				return "E-mail bloqueado."
			}
			return ""
		},
	}}}

	assert.Equal(t, "Informe um e-mail valido.", s.Validate(map[string]string{"email": "abc"})["email"])
	assert.Equal(t, "E-mail bloqueado.", s.Validate(map[string]string{"email": "banido@x.com"})["email"])
	assert.True(t, s.Validate(map[string]string{"email": "a@x.com"}).Valid())
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "390.533.447-05", validate.FormatCPF("39053344705"))
	assert.Equal(t, "390.533.447-05", validate.FormatCPF("390533447051111"))
	assert.Equal(t, "390.5", validate.FormatCPF("3905"))
	assert.Equal(t, "", validate.FormatCPF("abc"))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, validate.ValidCPF("390.533.447-05"))
	assert.True(t, validate.ValidCPF("39053344705"))
	assert.False(t, validate.ValidCPF("390.533.447-15"))
	assert.False(t, validate.ValidCPF("111.111.111-11"))
	assert.False(t, validate.ValidCPF("123"))
}
