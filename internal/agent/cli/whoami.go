package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/state"
)

// NewWhoamiCmd создаёт CLI-команду вывода сохранённой сессии.
//
// Показывает статус состояния и, если вход выполнен, данные пользователя.
func NewWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Показать сохранённую сессию",
		Run: func(cmd *cobra.Command, args []string) {
			if app.State.Status != state.StatusAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "anonymous")
				return
			}
			s := app.State.Session
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id: %s)\n", s.Name, s.Email, s.UserID)
		},
	}
}
