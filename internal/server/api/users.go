// HTTP-хендлеры списка и удаления пользователей
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
)

// DeleteUserResponse описывает успешный ответ удаления пользователя.
type DeleteUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userID"`
}

// ListUsers возвращает всех пользователей в безопасной проекции
// (id, name, email, createdAt — без hash паролей).
//
// Ответы:
//   - 200 OK: массив пользователей (пустой массив, если никого нет);
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      List users
// @Description  Returns all users in a safe projection (no password hashes).
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.PublicUser
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Errorf("list users failed: %v", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// DeleteUser удаляет пользователя по id из URL.
//
// Сначала проверяется существование, поэтому повторное удаление того же id
// даёт 400 not found, а не 500.
//
// Ответы:
//   - 200 OK: пользователь удалён;
//   - 400 Bad Request: некорректный id или пользователь не найден;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Delete user
// @Description  Deletes a user by id. Repeat deletion of the same id returns not found.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID (uuid)"
// @Success      200 {object} DeleteUserResponse
// @Failure      400 {object} ErrorResponse "Invalid id or user not found"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrNotFound)
		return
	}

	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusBadRequest, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorf("delete user failed: %v", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, DeleteUserResponse{
		Message: "User deleted successfully",
		UserID:  id.String(),
	})
}
