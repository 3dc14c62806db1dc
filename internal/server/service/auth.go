package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/config"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (валидация + хэширование пароля)
//   - аутентификация (логин) без раскрытия факта существования email
//   - выпуск сессионного JWT
type AuthService struct {
	users UsersRepo

	pass crypto.PasswordParams
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.PasswordParams{
			Hasher: cfg.Password.Hasher,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
			BcryptCost: cfg.Password.Bcrypt.Cost,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			SessionTTL: cfg.Auth.SessionTTL.Std(),
		},
	}
}

// SessionTTLSeconds возвращает срок жизни сессионного токена в секундах
// (нужен api-слою для Max-Age у cookie).
func (s *AuthService) SessionTTLSeconds() int {
	return int(s.jwt.SessionTTL.Seconds())
}

// Register регистрирует нового пользователя.
//
// Валидация (первая ошибка прекращает проверку, в БД до этого ничего не пишем):
//   - name обязателен, длина >= 2
//   - email обязателен, содержит "@" и "."
//   - пароль обязателен, длина >= 6
//
// Возвращает:
//   - id пользователя
//   - ошибку валидации (оборачивает ErrInvalidInput) или ErrAlreadyExists,
//     если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validateName(name); err != nil {
		return uuid.Nil, err
	}
	if err := validateEmail(email); err != nil {
		return uuid.Nil, err
	}
	if err := validatePassword(password); err != nil {
		return uuid.Nil, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	// plaintext пароля дальше этой точки не живёт
	return s.users.Create(ctx, name, email, hash)
}

// Login аутентифицирует пользователя и выдаёт сессионный токен.
//
// Поведение:
//   - не раскрывает факт существования email: "нет такого пользователя"
//     и "неверный пароль" дают одинаковую ErrInvalidCredentials
//   - при успехе возвращает пользователя (для безопасной проекции в ответе)
//     и подписанный токен
//
// Ошибки:
//   - ошибки валидации (оборачивают ErrInvalidInput)
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validateEmail(email); err != nil {
		return models.User{}, "", err
	}
	if err := validatePassword(password); err != nil {
		return models.User{}, "", err
	}

	// получаем юзера по email
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", serr.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}
	if !ok {
		return models.User{}, "", serr.ErrInvalidCredentials
	}
	// выпускаем сессионный токен
	token, err := crypto.NewSessionToken(user.ID.String(), s.jwt)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	return user, token, nil
}

// validateName: имя обязательно и не короче 2 символов.
func validateName(name string) error {
	if len(name) < 2 {
		return serr.ErrNameTooShort
	}
	return nil
}

// validateEmail: email обязателен и содержит "@" и ".".
func validateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return serr.ErrEmailInvalid
	}
	return nil
}

// validatePassword: пароль обязателен и не короче 6 символов.
func validatePassword(password string) error {
	if len(password) < 6 {
		return serr.ErrPasswordTooShort
	}
	return nil
}
