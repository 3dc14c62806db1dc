package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты регистрации и логина;
//   - middleware логирования для всех запросов;
//   - группу защищённых токеном эндпоинтов (/users и DELETE /{id}).
//
// Список и удаление пользователей закрыты токеном нарочно:
// в исходной версии они были открыты, это была дыра, а не дизайн.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка сессионного токена
		r.Use(h.Verifier.AuthMiddleware())

		r.Get("/users", h.ListUsers)
		r.Delete("/{id}", h.DeleteUser)
	})

	return r
}
