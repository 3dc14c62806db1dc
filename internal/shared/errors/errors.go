// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные.
	// Текст одинаковый для "нет такого email" и "неверный пароль" —
	// чтобы нельзя было перебирать зарегистрированные email.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован. Единый текст для всех причин отказа
	// (нет токена, битый токен, просрочен, чужая подпись).
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// Ошибки валидации полей регистрации/логина.
// Все оборачивают ErrInvalidInput, чтобы api-слой мог отдать 400 через errors.Is,
// но при этом показать пользователю конкретное сообщение по полю.
var (
	ErrNameTooShort     = validationError("name must be at least 2 characters")
	ErrEmailInvalid     = validationError("invalid email format")
	ErrPasswordTooShort = validationError("password must be at least 6 characters")
)

// validationError создаёт ошибку валидации поверх ErrInvalidInput.
func validationError(msg string) error {
	return &fieldError{msg: msg}
}

type fieldError struct {
	msg string
}

func (e *fieldError) Error() string { return e.msg }

// Unwrap позволяет errors.Is(err, ErrInvalidInput) для всех ошибок валидации.
func (e *fieldError) Unwrap() error { return ErrInvalidInput }
