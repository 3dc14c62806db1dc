package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
)

// UsersService — тонкие операции над пользователями: список и удаление.
type UsersService struct {
	users UsersRepo
}

// NewUsersService создаёт UsersService.
func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// List возвращает безопасные проекции всех пользователей (без hash паролей).
func (s *UsersService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	// пустой список сериализуем как [], а не null
	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

// Delete удаляет пользователя по id.
//
// Сначала проверяем существование, чтобы вызывающий получил внятный
// "not found" вместо общей ошибки сервера; повторное удаление того же id
// тоже даёт ErrNotFound.
func (s *UsersService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
