package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/leojp04/drarea/internal/model"
	"github.com/leojp04/drarea/internal/validate"
)

func loginSchema() validate.Schema {
	return validate.Schema{Fields: []validate.Field{
		{Name: "email", Required: true, RequiredMsg: "E-mail obrigatório.",
			Pattern: validate.EmailPattern, PatternMsg: "Informe um e-mail válido."},
		{Name: "senha", Required: true, RequiredMsg: "Informe a senha.",
			MinLen: 6, MinLenMsg: "A senha deve ter ao menos 6 caracteres."},
	}}
}

func cadastroSchema() validate.Schema {
	return validate.Schema{Fields: []validate.Field{
		{Name: "nomeCompleto", Required: true, RequiredMsg: "Nome completo obrigatório.",
			MinLen: 3, MinLenMsg: "Informe o nome completo."},
		{Name: "email", Required: true, RequiredMsg: "E-mail obrigatório.",
			Pattern: validate.EmailPattern, PatternMsg: "Informe um e-mail válido."},
		{Name: "senha", Required: true, RequiredMsg: "Informe a senha.",
			MinLen: 6, MinLenMsg: "A senha deve ter ao menos 6 caracteres."},
		{Name: "cpf", Required: true, RequiredMsg: "CPF obrigatório.",
			Pattern: validate.CPFPattern, PatternMsg: "CPF inválido.",
			Check: func(v string) string {
				if !validate.ValidCPF(v) {
					return "CPF inválido."
				}
				return ""
			}},
	}}
}

func agendarSchema() validate.Schema {
	return validate.Schema{Fields: []validate.Field{
		{Name: "nomeCompleto", Required: true, RequiredMsg: "Informe o nome completo.",
			MinLen: 3, MinLenMsg: "Informe ao menos 3 caracteres."},
		{Name: "cpf", Required: true, RequiredMsg: "Informe o CPF.",
			Pattern: validate.CPFPattern, PatternMsg: "CPF inválido."},
		{Name: "email", Required: true, RequiredMsg: "Informe o e-mail.",
			Pattern: validate.EmailPattern, PatternMsg: "E-mail inválido."},
		{Name: "especialidade", Required: true, RequiredMsg: "Selecione uma especialidade.",
			OneOf: model.Especialidades, OneOfMsg: "Selecione uma especialidade."},
		{Name: "tipoTerapia", Required: true, RequiredMsg: "Selecione o tipo de terapia.",
			OneOf: model.TiposTerapia, OneOfMsg: "Selecione o tipo de terapia."},
		{Name: "diaSemana", Required: true, RequiredMsg: "Selecione o dia da semana.",
			OneOf: model.DiasSemana, OneOfMsg: "Selecione o dia da semana."},
		{Name: "dataISO", Required: true, RequiredMsg: "Informe a data e horário.",
			Check: func(v string) string {
				if _, err := (model.Consulta{DataISO: v}).ParseData(); err != nil {
					return "Informe a data no formato 2006-01-02T15:04."
				}
				return ""
			}},
	}}
}

func cadastroDiretorioSchema() validate.Schema {
	return validate.Schema{Fields: []validate.Field{
		{Name: "nome", Required: true, RequiredMsg: "Informe o nome completo.",
			MinLen: 3, MinLenMsg: "Mínimo de 3 caracteres."},
		{Name: "nomeUsuario", Required: true, RequiredMsg: "Informe um nome de usuário."},
		{Name: "email", Required: true, RequiredMsg: "Informe o e-mail.",
			Pattern: validate.EmailPattern, PatternMsg: "E-mail inválido."},
	}}
}

func senhaSchema() validate.Schema {
	return validate.Schema{
		Fields: []validate.Field{
			{Name: "senhaAtual", Required: true, RequiredMsg: "Informe a senha atual.",
				MinLen: 6, MinLenMsg: "A senha deve ter ao menos 6 caracteres."},
			{Name: "novaSenha", Required: true, RequiredMsg: "Informe a nova senha.",
				MinLen: 6, MinLenMsg: "A nova senha deve ter ao menos 6 caracteres."},
			{Name: "confirmarSenha", Required: true, RequiredMsg: "Confirme a nova senha.",
				MinLen: 6, MinLenMsg: "A confirmação deve ter ao menos 6 caracteres."},
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
}

// checkForm validates and, on failure, prints one line per field error.
func checkForm(cmd *cobra.Command, s validate.Schema, values map[string]string) error {
	errs := s.Validate(values)
	if errs.Valid() {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f, errs[f])
	}
	return fmt.Errorf("corrija os campos acima")
}
