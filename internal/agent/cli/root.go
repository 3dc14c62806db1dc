// Package cli реализует командный интерфейс (CLI) клиентского приложения userhub.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку сохранённой сессии (токен + пользователь) из конфигурационного файла;
//   - прогон событий через таблицу переходов состояния сессии и выполнение
//     её эффектов (сохранить/стереть сессию);
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-userhub/internal/agent/config"
	"github.com/IvanChernomyrdin/go-userhub/internal/agent/state"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу, загруженная
// сессия и текущее состояние машины переходов.
type App struct {
	// ServerURL — базовый URL сервера userhub (например, "http://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранённой сессией.
	CredsPath string
	// Creds — загруженная сессия из файла конфигурации.
	Creds *config.Credentials

	// State — состояние сессии, восстановленное из Creds.
	State state.State
}

// Apply прогоняет событие через таблицу переходов и выполняет эффект.
//
// EffectPersist сохраняет текущую сессию в файл, EffectClear стирает файл.
// Это единственные места, где CLI пишет сессию на диск.
func (a *App) Apply(e state.Event) error {
	next, eff := state.Reduce(a.State, e)
	a.State = next

	switch eff {
	case state.EffectPersist:
		a.Creds = &config.Credentials{
			Token:  next.Session.Token,
			UserID: next.Session.UserID,
			Name:   next.Session.Name,
			Email:  next.Session.Email,
		}
		return config.Save(a.CredsPath, a.Creds)
	case state.EffectClear:
		a.Creds = &config.Credentials{}
		return config.Clear(a.CredsPath)
	}
	return nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу сессии, загружается сохранённая сессия
// и восстанавливается состояние машины переходов.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "userhub",
		Short: "userhub CLI — клиент сервиса регистрации/логина",
		Long: `userhub CLI.

Команды:
  register  Регистрация нового пользователя
  login     Логин (получить сессионный токен)
  users     Список пользователей
  delete    Удалить пользователя по id
  whoami    Показать сохранённую сессию
  logout    Выйти (стереть сохранённую сессию)
  version   Версия и дата сборки

Примеры:

Регистрация (пароль будет запрошен скрыто):
  userhub register --name Al --email test@example.com

Логин:
  userhub login --email test@example.com
  (сохраняет токен и пользователя в локальном конфиге)

Список пользователей:
  userhub users

Удаление:
  userhub delete 1b4e28ba-2fa1-11d2-883f-0016d3cca427
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds

			// восстанавливаем состояние из сохранённой сессии
			if creds.Token != "" {
				app.State = state.Authenticated(state.Session{
					UserID: creds.UserID,
					Name:   creds.Name,
					Email:  creds.Email,
					Token:  creds.Token,
				})
			} else {
				app.State = state.Anonymous()
			}
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewWhoamiCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
