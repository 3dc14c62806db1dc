package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/api"
)

// NewDeleteCmd создаёт CLI-команду для удаления пользователя по id.
//
// Команда требует сохранённую сессию. Удаление безусловное: проверяется
// только существование записи, повторное удаление того же id вернёт
// ошибку "not found".
//
// Пример использования:
//
//	userhub delete 1b4e28ba-2fa1-11d2-883f-0016d3cca427
func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить пользователя по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.Token == "" {
				return errors.New("not logged in; run: userhub login")
			}

			c := api.NewClient(app.ServerURL)
			resp, err := c.DeleteUser(app.Creds.Token, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", resp.UserID)
			return nil
		},
	}
}
