package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/state"
)

// NewLogoutCmd создаёт CLI-команду выхода.
//
// Переход logout стирает сохранённую сессию (эффект clear);
// сам сервер при этом не вызывается — сессия stateless и
// токен просто перестаёт использоваться.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Выйти (стереть сохранённую сессию)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.State.Status != state.StatusAuthenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}

			if err := app.Apply(state.Event{Kind: state.EventLogout}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
