package cli_test

import (
	"bytes"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leojp04/drarea/internal/cli"
	"github.com/leojp04/drarea/internal/handler"
	"github.com/leojp04/drarea/internal/middleware"
	"github.com/leojp04/drarea/internal/store"
)

func setupEnv(t *testing.T) {
	t.Helper()
	h := handler.New(store.NewMemory(), zap.NewNop())
	srv := httptest.NewServer(h.Router(middleware.NewRateLimiter(1000, 1000)))
	t.Cleanup(srv.Close)

	t.Setenv("DRAREA_API_URL", srv.URL)
	t.Setenv("DRAREA_SESSION_DIR", t.TempDir())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func cadastrarAna(t *testing.T) {
	t.Helper()
	out, err := run(t, "cadastro",
		"--nome", "Ana Souza",
		"--email", "ana@x.com",
		"--cpf", "390.533.447-05",
		"--senha", "segredo1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cadastro realizado!")
}

func login(t *testing.T) {
	t.Helper()
	out, err := run(t, "login", "--email", "ana@x.com", "--senha", "segredo1")
	require.NoError(t, err)
	assert.Contains(t, out, "Bem-vindo(a), Ana Souza!")
}

func TestCadastroLoginPerfil(t *testing.T) {
	setupEnv(t)
	cadastrarAna(t)
	login(t)

	out, err := run(t, "quem")
	require.NoError(t, err)
	assert.Contains(t, out, "ana@x.com")

	out, err = run(t, "perfil")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhuma consulta encontrada.")
}

func TestLoginFailures(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "login", "--email", "a@x.com", "--senha", "secret1")
	require.Error(t, err)
	assert.Equal(t, "Usuário não encontrado.", err.Error())

	cadastrarAna(t)
	_, err = run(t, "login", "--email", "ana@x.com", "--senha", "errada1")
	require.Error(t, err)
	assert.Equal(t, "Senha incorreta.", err.Error())

	out, _ := run(t, "quem")
	assert.Contains(t, out, "Nenhuma sessão ativa.")
}

func TestCadastroValidation(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "cadastro",
		"--nome", "An",
		"--email", "não-é-email",
		"--cpf", "123",
		"--senha", "123")
	require.Error(t, err)
	assert.Contains(t, out, "Informe o nome completo.")
	assert.Contains(t, out, "Informe um e-mail válido.")
	assert.Contains(t, out, "CPF inválido.")
	assert.Contains(t, out, "A senha deve ter ao menos 6 caracteres.")
}

func TestCadastroDuplicado(t *testing.T) {
	setupEnv(t)
	cadastrarAna(t)

	_, err := run(t, "cadastro",
		"--nome", "Outra Ana",
		"--email", "ana@x.com",
		"--cpf", "111.444.777-35",
		"--senha", "segredo2")
	require.Error(t, err)
	assert.Equal(t, "E-mail já cadastrado.", err.Error())
}

func TestAgendarLifecycle(t *testing.T) {
	setupEnv(t)
	cadastrarAna(t)
	login(t)

	// a sessão preenche nome, e-mail e CPF
	out, err := run(t, "agendar",
		"--especialidade", "fisioterapia",
		"--tipo", "individual",
		"--dia", "segunda-feira",
		"--data", "2026-09-14T10:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Consulta agendada com sucesso!")

	id := regexp.MustCompile(`id ([0-9a-f-]+)`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	// o CPF já tem uma consulta ativa
	_, err = run(t, "agendar",
		"--especialidade", "psicologia",
		"--tipo", "grupo",
		"--dia", "quarta-feira",
		"--data", "2026-09-16T14:00")
	require.Error(t, err)
	assert.Equal(t, "Já existe uma consulta ativa vinculada a este CPF.", err.Error())

	out, err = run(t, "perfil")
	require.NoError(t, err)
	assert.Contains(t, out, "fisioterapia")
	assert.Contains(t, out, "[marcada]")

	out, err = run(t, "remarcar", id[1], "--data", "2026-10-05T15:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Consulta remarcada para 05/10/2026 15:30.")

	out, err = run(t, "cancelar", id[1], "--sim")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelada")

	// com a anterior cancelada, agendar de novo é permitido
	out, err = run(t, "agendar",
		"--especialidade", "psicologia",
		"--tipo", "grupo",
		"--dia", "quarta-feira",
		"--data", "2026-09-16T14:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Consulta agendada com sucesso!")
}

func TestComandosGuardadosExigemSessao(t *testing.T) {
	setupEnv(t)

	for _, args := range [][]string{
		{"perfil"},
		{"remarcar", "abc", "--data", "2026-10-05T15:30"},
		{"cancelar", "abc", "--sim"},
		{"perfil", "senha", "--atual", "segredo1", "--nova", "novosegredo", "--confirmar", "novosegredo"},
	} {
		_, err := run(t, args...)
		require.Error(t, err, "%v", args)
		assert.Contains(t, err.Error(), "drarea login")
	}
}

func TestTrocaDeSenha(t *testing.T) {
	setupEnv(t)
	cadastrarAna(t)
	login(t)

	out, err := run(t, "perfil", "senha",
		"--atual", "segredo1", "--nova", "novosegredo", "--confirmar", "diferente1")
	require.Error(t, err)
	assert.Contains(t, out, "As senhas precisam coincidir.")

	out, err = run(t, "perfil", "senha",
		"--atual", "segredo1", "--nova", "novosegredo", "--confirmar", "novosegredo")
	require.NoError(t, err)
	assert.Contains(t, out, "Senha atualizada com sucesso!")

	out, err = run(t, "login", "--email", "ana@x.com", "--senha", "novosegredo")
	require.NoError(t, err)
	assert.Contains(t, out, "Bem-vindo(a)")
}

func TestDiretorioDeUsuarios(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "usuarios", "criar",
		"--nome", "Bruno Lima", "--usuario", "brunol", "--email", "bruno@x.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Cadastro realizado!")

	id := regexp.MustCompile(`id ([0-9a-f-]+)`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	out, err = run(t, "usuarios", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Bruno Lima")

	out, err = run(t, "usuarios", "get", id[1])
	require.NoError(t, err)
	assert.Contains(t, out, "brunol")

	out, err = run(t, "usuarios", "remover", id[1], "--sim")
	require.NoError(t, err)
	assert.Contains(t, out, "Usuário removido.")

	out, err = run(t, "usuarios", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum usuário cadastrado.")
}

func TestLogout(t *testing.T) {
	setupEnv(t)
	cadastrarAna(t)
	login(t)

	out, err := run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessão encerrada.")

	_, err = run(t, "perfil")
	require.Error(t, err)
}
