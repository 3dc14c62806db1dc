package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/api"
	"github.com/IvanChernomyrdin/go-userhub/internal/agent/state"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере userhub,
// получает сессионный токен и (через эффект перехода success)
// сохраняет сессию в локальный конфигурационный файл.
//
// Пример использования:
//
//	userhub login --email test@example.com
//
// Пароль запрашивается скрыто; --password-stdin читает его из STDIN.
func NewLoginCmd(app *App) *cobra.Command {
	var email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить сессионный токен)",
		Long: `Логин пользователя.

Пример:
  userhub login --email test@example.com
  echo "secret1" | userhub login --email test@example.com --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			// Повторный логин поверх сохранённой сессии начинаем заново.
			// Переинициализация в памяти мимо таблицы переходов: эффектов
			// у неё нет, сохранённая сессия остаётся на диске до success/logout.
			app.State = state.Anonymous()
			if err := app.Apply(state.Event{Kind: state.EventSubmit}); err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := api.NewClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, password)
			if err != nil {
				app.Apply(state.Event{Kind: state.EventFailure, Err: err.Error()})
				return err
			}

			// переход success сохраняет сессию на диск (эффект persist)
			if err := app.Apply(state.Event{
				Kind: state.EventSuccess,
				Session: state.Session{
					UserID: resp.User.ID,
					Name:   resp.User.Name,
					Email:  resp.User.Email,
					Token:  resp.Token,
				},
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (session saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
