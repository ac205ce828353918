// Package cli implements the drarea command set: login/cadastro, the
// scheduling flow, the profile view with remarcar/cancelar, and the user
// directory. Each command validates its form before anything touches the
// network and turns every failure into a printed message.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/leojp04/drarea/internal/api"
	"github.com/leojp04/drarea/internal/auth"
	"github.com/leojp04/drarea/internal/config"
	"github.com/leojp04/drarea/internal/consulta"
	"github.com/leojp04/drarea/internal/session"
	"github.com/leojp04/drarea/internal/usuario"
)

// App carries the wired services shared by all commands.
type App struct {
	Session   *session.Store
	Usuarios  *usuario.Service
	Consultas *consulta.Service
	Auth      *auth.Flow
}

func NewRootCmd(version string) *cobra.Command {
	var serverURL string
	app := &App{}

	root := &cobra.Command{
		Use:           "drarea",
		Short:         "Agendamento de consultas da clínica Dra. Réa",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "",
		"URL base da API (padrão: DRAREA_API_URL ou "+config.DefaultAPIURL+")")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClient()
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.APIURL = serverURL
		}
		dir := cfg.SessionDir
		if dir == "" {
			dir = session.DefaultDir()
		}

		client := api.New(cfg.APIURL, nil)
		app.Session = session.NewStore(dir)
		app.Usuarios = usuario.NewService(client)
		app.Consultas = consulta.NewService(client)
		app.Auth = auth.NewFlow(app.Usuarios, app.Session)
		return nil
	}

	root.AddCommand(newLoginCmd(app))
	root.AddCommand(newCadastroCmd(app))
	root.AddCommand(newLogoutCmd(app))
	root.AddCommand(newQuemCmd(app))
	root.AddCommand(newAgendarCmd(app))
	root.AddCommand(newPerfilCmd(app))
	root.AddCommand(newRemarcarCmd(app))
	root.AddCommand(newCancelarCmd(app))
	root.AddCommand(newUsuariosCmd(app))
	return root
}
