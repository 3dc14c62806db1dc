// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — запись таблицы users.
//
// PasswordHash никогда не сериализуется наружу: во все ответы API
// пользователь попадает только через Public().
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser — безопасная проекция пользователя для ответов API.
//
// Содержит только id, name, email и created_at.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public возвращает безопасную проекцию пользователя (без hash пароля).
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
