package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leojp04/drarea/internal/consulta"
	"github.com/leojp04/drarea/internal/validate"
)

func newAgendarCmd(app *App) *cobra.Command {
	var nome, cpf, email, especialidade, tipo, dia, data string
	cmd := &cobra.Command{
		Use:   "agendar",
		Short: "Agenda uma consulta",
		Long: "Agenda uma consulta. Um CPF só pode ter uma consulta ativa por vez;\n" +
			"cancele a anterior antes de agendar outra.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// a sessão preenche o que o formulário deixou em branco
			if u := app.Session.Read(); u != nil {
				if nome == "" {
					nome = u.NomeCompleto
				}
				if email == "" {
					email = u.Email
				}
				if cpf == "" {
					cpf = u.CPF
				}
			}
			nome = promptIfEmpty(cmd, nome, "Nome completo")
			cpf = validate.FormatCPF(promptIfEmpty(cmd, cpf, "CPF"))
			email = promptIfEmpty(cmd, email, "E-mail")
			especialidade = promptIfEmpty(cmd, especialidade, "Especialidade")
			tipo = promptIfEmpty(cmd, tipo, "Tipo de terapia")
			dia = promptIfEmpty(cmd, dia, "Dia da semana")
			data = promptIfEmpty(cmd, data, "Data e horário (2006-01-02T15:04)")

			if err := checkForm(cmd, agendarSchema(), map[string]string{
				"nomeCompleto":  nome,
				"cpf":           cpf,
				"email":         email,
				"especialidade": especialidade,
				"tipoTerapia":   tipo,
				"diaSemana":     dia,
				"dataISO":       data,
			}); err != nil {
				return err
			}

			c, err := app.Consultas.Create(cmd.Context(), consulta.CreateInput{
				CPF:           cpf,
				NomePaciente:  nome,
				Email:         email,
				Especialidade: especialidade,
				TipoTerapia:   tipo,
				DiaSemana:     dia,
				DataISO:       data,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Consulta agendada com sucesso! (id %s)\n", c.ID)
			if app.Session.Read() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Faça login para acompanhar pela opção `perfil`.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nome, "nome", "", "nome completo do paciente")
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF do paciente")
	cmd.Flags().StringVar(&email, "email", "", "e-mail de contato")
	cmd.Flags().StringVar(&especialidade, "especialidade", "", "fisioterapia | psicologia | terapia ocupacional | fonoaudiologia | ortopedia")
	cmd.Flags().StringVar(&tipo, "tipo", "", "individual | grupo")
	cmd.Flags().StringVar(&dia, "dia", "", "segunda-feira .. sexta-feira")
	cmd.Flags().StringVar(&data, "data", "", "data e horário (2006-01-02T15:04)")
	return cmd
}
