package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leojp04/drarea/internal/model"
)

// errSemSessao is the CLI analog of the redirect-to-login guard.
var errSemSessao = errors.New("Você precisa estar logado. Rode `drarea login` primeiro.")

func (a *App) requireSession() (*model.Usuario, error) {
	u := a.Session.Read()
	if u == nil {
		return nil, errSemSessao
	}
	return u, nil
}

func newPerfilCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfil",
		Short: "Mostra seus dados e suas consultas",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.requireSession()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Nome:  %s\n", u.NomeCompleto)
			fmt.Fprintf(cmd.OutOrStdout(), "Email: %s\n", u.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "CPF:   %s\n", u.CPF)

			if u.CPF == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "\nSem CPF cadastrado; nenhuma consulta para listar.")
				return nil
			}

			consultas, err := app.Consultas.ListByCPF(cmd.Context(), u.CPF)
			if err != nil {
				return err
			}
			if len(consultas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\nNenhuma consulta encontrada.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nConsultas:")
			for _, c := range consultas {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-20s %-12s %s  [%s]\n",
					c.ID, c.Especialidade, c.TipoTerapia, formatData(c), c.Status)
			}
			return nil
		},
	}
	cmd.AddCommand(newSenhaCmd(app))
	return cmd
}

func formatData(c model.Consulta) string {
	t, err := c.ParseData()
	if err != nil {
		return c.DataISO
	}
	return t.Format("02/01/2006 15:04")
}

func newSenhaCmd(app *App) *cobra.Command {
	var atual, nova, confirmar string
	cmd := &cobra.Command{
		Use:   "senha",
		Short: "Troca a senha da conta",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}
			atual = promptPassword(cmd, atual, "Senha atual")
			nova = promptPassword(cmd, nova, "Nova senha")
			confirmar = promptPassword(cmd, confirmar, "Confirme a nova senha")

			if err := checkForm(cmd, senhaSchema(), map[string]string{
				"senhaAtual": atual, "novaSenha": nova, "confirmarSenha": confirmar,
			}); err != nil {
				return err
			}

			if err := app.Auth.ChangePassword(cmd.Context(), atual, nova); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Senha atualizada com sucesso!")
			return nil
		},
	}
	cmd.Flags().StringVar(&atual, "atual", "", "senha atual")
	cmd.Flags().StringVar(&nova, "nova", "", "nova senha")
	cmd.Flags().StringVar(&confirmar, "confirmar", "", "confirmação da nova senha")
	return cmd
}

func newRemarcarCmd(app *App) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "remarcar <id>",
		Short: "Remarca uma consulta para outra data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}
			data = promptIfEmpty(cmd, data, "Nova data e horário (2006-01-02T15:04)")
			if data == "" {
				return errors.New("Informe a nova data e horário para remarcar.")
			}
			if _, err := (model.Consulta{DataISO: data}).ParseData(); err != nil {
				return errors.New("Informe a data no formato 2006-01-02T15:04.")
			}

			c, err := app.Consultas.Reschedule(cmd.Context(), args[0], data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Consulta remarcada para %s.\n", formatData(*c))
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "nova data e horário (2006-01-02T15:04)")
	return cmd
}

func newCancelarCmd(app *App) *cobra.Command {
	var sim bool
	cmd := &cobra.Command{
		Use:   "cancelar <id>",
		Short: "Cancela uma consulta (ela permanece no histórico)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}
			if !sim && !confirm(cmd, "Tem certeza que deseja cancelar esta consulta?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelamento abortado.")
				return nil
			}

			c, err := app.Consultas.Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Consulta de %s cancelada.\n", formatData(*c))
			return nil
		},
	}
	cmd.Flags().BoolVar(&sim, "sim", false, "não pedir confirmação")
	return cmd
}
