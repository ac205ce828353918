package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leojp04/drarea/internal/usuario"
)

func newUsuariosCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Administra o diretório de usuários",
	}
	cmd.AddCommand(newUsuariosListCmd(app))
	cmd.AddCommand(newUsuariosGetCmd(app))
	cmd.AddCommand(newUsuariosCriarCmd(app))
	cmd.AddCommand(newUsuariosRemoverCmd(app))
	return cmd
}

func newUsuariosListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista os usuários cadastrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			usuarios, err := app.Usuarios.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(usuarios) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nenhum usuário cadastrado.")
				return nil
			}
			for _, u := range usuarios {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-25s %s\n", u.ID, u.NomeCompleto, u.Email)
			}
			return nil
		},
	}
}

func newUsuariosGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Mostra um usuário",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Usuarios.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Nome:    %s\n", u.NomeCompleto)
			fmt.Fprintf(cmd.OutOrStdout(), "Usuário: %s\n", u.NomeUsuario)
			fmt.Fprintf(cmd.OutOrStdout(), "Email:   %s\n", u.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "CPF:     %s\n", u.CPF)
			return nil
		},
	}
}

func newUsuariosCriarCmd(app *App) *cobra.Command {
	var nome, nomeUsuario, email string
	cmd := &cobra.Command{
		Use:   "criar",
		Short: "Cadastra um usuário no diretório (sem senha)",
		RunE: func(cmd *cobra.Command, args []string) error {
			nome = promptIfEmpty(cmd, nome, "Nome completo")
			nomeUsuario = promptIfEmpty(cmd, nomeUsuario, "Nome de usuário")
			email = promptIfEmpty(cmd, email, "E-mail")

			if err := checkForm(cmd, cadastroDiretorioSchema(), map[string]string{
				"nome": nome, "nomeUsuario": nomeUsuario, "email": email,
			}); err != nil {
				return err
			}

			u, err := app.Usuarios.Create(cmd.Context(), usuario.CreateInput{
				NomeCompleto: nome,
				NomeUsuario:  nomeUsuario,
				Email:        email,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cadastro realizado! (id %s)\n", u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&nome, "nome", "", "nome completo")
	cmd.Flags().StringVar(&nomeUsuario, "usuario", "", "nome de usuário")
	cmd.Flags().StringVar(&email, "email", "", "e-mail")
	return cmd
}

func newUsuariosRemoverCmd(app *App) *cobra.Command {
	var sim bool
	cmd := &cobra.Command{
		Use:   "remover <id>",
		Short: "Remove um usuário do diretório",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sim && !confirm(cmd, "Tem certeza que deseja remover este usuário?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Remoção abortada.")
				return nil
			}
			if err := app.Usuarios.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Usuário removido.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&sim, "sim", false, "não pedir confirmação")
	return cmd
}
