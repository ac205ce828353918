package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leojp04/drarea/internal/auth"
	"github.com/leojp04/drarea/internal/validate"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, senha string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Entra com e-mail (ou nome de usuário) e senha",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = promptIfEmpty(cmd, email, "E-mail")
			senha = promptPassword(cmd, senha, "Senha")

			if err := checkForm(cmd, loginSchema(), map[string]string{
				"email": email, "senha": senha,
			}); err != nil {
				return err
			}

			u, err := app.Auth.Login(cmd.Context(), email, senha)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bem-vindo(a), %s!\n", u.NomeCompleto)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "e-mail ou nome de usuário")
	cmd.Flags().StringVar(&senha, "senha", "", "senha (será pedida se omitida)")
	return cmd
}

func newCadastroCmd(app *App) *cobra.Command {
	var nome, email, cpf, senha string
	cmd := &cobra.Command{
		Use:   "cadastro",
		Short: "Cria uma conta",
		RunE: func(cmd *cobra.Command, args []string) error {
			nome = promptIfEmpty(cmd, nome, "Nome completo")
			email = promptIfEmpty(cmd, email, "E-mail")
			cpf = validate.FormatCPF(promptIfEmpty(cmd, cpf, "CPF"))
			senha = promptPassword(cmd, senha, "Senha")

			if err := checkForm(cmd, cadastroSchema(), map[string]string{
				"nomeCompleto": nome, "email": email, "cpf": cpf, "senha": senha,
			}); err != nil {
				return err
			}

			_, err := app.Auth.Signup(cmd.Context(), auth.SignupInput{
				NomeCompleto: nome,
				Email:        email,
				CPF:          cpf,
				Password:     senha,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Cadastro realizado! Entre com `drarea login --email %s`.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&nome, "nome", "", "nome completo")
	cmd.Flags().StringVar(&email, "email", "", "e-mail")
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF")
	cmd.Flags().StringVar(&senha, "senha", "", "senha (será pedida se omitida)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Encerra a sessão",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada.")
			return nil
		},
	}
}

func newQuemCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quem",
		Short: "Mostra o usuário da sessão atual",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := app.Session.Read()
			if u == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma sessão ativa.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.NomeCompleto, u.Email)
			return nil
		},
	}
}
