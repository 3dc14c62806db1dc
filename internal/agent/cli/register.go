package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/api"
	"github.com/IvanChernomyrdin/go-userhub/internal/agent/state"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере userhub
// с заданными именем, email и паролем. Пароль по умолчанию запрашивается
// скрыто из терминала; флаг --password-stdin позволяет передать его
// через STDIN для скриптов.
//
// Пример использования:
//
//	userhub register --name Al --email test@example.com
//
// В случае успешной регистрации пользователю выводится id созданной записи.
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  userhub register --name Al --email test@example.com
  echo "secret1" | userhub register --name Al --email test@example.com --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			if err := app.Apply(state.Event{Kind: state.EventSubmit}); err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			resp, err := c.Register(name, email, password)
			if err != nil {
				app.Apply(state.Event{Kind: state.EventFailure, Err: err.Error()})
				return err
			}

			// Регистрация не логинит: успех без сессии возвращает в anonymous.
			// Прямое присваивание вместо события: это не переход таблицы,
			// а переинициализация в памяти, диск не трогается.
			app.State = state.Anonymous()

			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (user id: %s)\n", resp.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
