package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/api"
)

// NewUsersCmd создаёт CLI-команду для получения списка пользователей.
//
// Команда требует сохранённую сессию (выполните login) и выводит
// пользователей в безопасной проекции: id, имя, email, дата создания.
//
// Пример использования:
//
//	userhub users
func NewUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Список пользователей",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Token == "" {
				return errors.New("not logged in; run: userhub login")
			}

			c := api.NewClient(app.ServerURL)
			users, err := c.Users(app.Creds.Token)
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no users")
				return nil
			}
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.Email, u.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
