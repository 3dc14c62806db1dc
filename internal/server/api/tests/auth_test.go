package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/api"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/config"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-userhub/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-userhub/internal/shared/logger"
)

// NewTestHandler создаёт Handler с моками и конфигом через dependency injection
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			Issuer:     "userhub",
			Audience:   "userhub-clients",
			SessionTTL: config.Duration(time.Hour),
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
	}

	svc := service.NewServices(service.Repositories{Users: users}, cfg)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), users
}

func TestHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected error body, got empty")
	}
}

func TestHandler_Register_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		Create(gomock.Any(), "Al", "a@b.com", gomock.Any()).
		Return(userID, nil)

	body, _ := json.Marshal(api.RegisterRequest{Name: "Al", Email: "a@b.com", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp api.RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID != userID.String() {
		t.Fatalf("expected userId %q, got %q", userID.String(), resp.UserID)
	}
	if resp.Message == "" {
		t.Fatal("expected non-empty message")
	}
}

// Сообщение ошибки валидации называет конкретное поле
func TestHandler_Register_ValidationMessages(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	cases := []struct {
		req  api.RegisterRequest
		want string
	}{
		{api.RegisterRequest{Name: "A", Email: "a@b.com", Password: "secret1"}, "name must be at least 2 characters"},
		{api.RegisterRequest{Name: "Al", Email: "bad-email", Password: "secret1"}, "invalid email format"},
		{api.RegisterRequest{Name: "Al", Email: "a@b.com", Password: "short"}, "password must be at least 6 characters"},
	}

	for _, tc := range cases {
		body, _ := json.Marshal(tc.req)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Register(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}

		var resp api.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Error != tc.want {
			t.Fatalf("expected error %q, got %q", tc.want, resp.Error)
		}
	}
}

// Email уже занят
func TestHandler_Register_Conflict(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		Create(gomock.Any(), "Al", "a@b.com", gomock.Any()).
		Return(uuid.Nil, serr.ErrAlreadyExists)

	body, _ := json.Marshal(api.RegisterRequest{Name: "Al", Email: "a@b.com", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

// Ошибка хранилища не протекает наружу
func TestHandler_Register_InternalError(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	users.EXPECT().
		Create(gomock.Any(), "Al", "a@b.com", gomock.Any()).
		Return(uuid.Nil, serr.ErrInternal)

	body, _ := json.Marshal(api.RegisterRequest{Name: "Al", Email: "a@b.com", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != serr.ErrInternal.Error() {
		t.Fatalf("expected opaque internal error, got %q", resp.Error)
	}
}

func TestHandler_Login_Success(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	hash, err := crypto.HashPassword("secret1", crypto.PasswordParams{Hasher: "bcrypt", BcryptCost: 4})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	stored := models.User{
		ID:           uuid.New(),
		Name:         "Al",
		Email:        "a@b.com",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	users.EXPECT().
		GetByEmail(gomock.Any(), "a@b.com").
		Return(stored, nil)

	body, _ := json.Marshal(api.LoginRequest{Email: "a@b.com", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	// hash пароля не должен попадать в ответ ни под каким именем
	if strings.Contains(rec.Body.String(), hash) ||
		strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Fatalf("response leaks password data: %q", rec.Body.String())
	}

	var resp api.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token in body")
	}
	if resp.User.ID != stored.ID || resp.User.Name != "Al" || resp.User.Email != "a@b.com" {
		t.Fatalf("unexpected user projection: %+v", resp.User)
	}

	// cookie: token, HttpOnly, Secure, SameSite=Strict
	cookies := rec.Result().Cookies()
	var tokenCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == middleware.TokenCookieName {
			tokenCookie = c
		}
	}
	if tokenCookie == nil {
		t.Fatal("expected token cookie")
	}
	if tokenCookie.Value != resp.Token {
		t.Fatal("cookie token differs from body token")
	}
	if !tokenCookie.HttpOnly {
		t.Fatal("expected HttpOnly cookie")
	}
	if !tokenCookie.Secure {
		t.Fatal("expected Secure cookie")
	}
	if tokenCookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict, got %v", tokenCookie.SameSite)
	}
}

// Неизвестный email и неверный пароль дают байт-в-байт одинаковый ответ
func TestHandler_Login_IndistinguishableFailures(t *testing.T) {
	t.Parallel()

	h, users := NewTestHandler(t)

	hash, err := crypto.HashPassword("correct-password", crypto.PasswordParams{Hasher: "bcrypt", BcryptCost: 4})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	users.EXPECT().
		GetByEmail(gomock.Any(), "unknown@b.com").
		Return(models.User{}, serr.ErrNotFound)

	body1, _ := json.Marshal(api.LoginRequest{Email: "unknown@b.com", Password: "secret1"})
	req1 := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body1))
	rec1 := httptest.NewRecorder()
	h.Login(rec1, req1)

	users.EXPECT().
		GetByEmail(gomock.Any(), "a@b.com").
		Return(models.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hash}, nil)

	body2, _ := json.Marshal(api.LoginRequest{Email: "a@b.com", Password: "secret1"})
	req2 := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body2))
	rec2 := httptest.NewRecorder()
	h.Login(rec2, req2)

	if rec1.Code != http.StatusUnauthorized || rec2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", rec1.Code, rec2.Code)
	}
	if !bytes.Equal(rec1.Body.Bytes(), rec2.Body.Bytes()) {
		t.Fatalf("expected identical bodies, got %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
}

func TestHandler_Login_Validation(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.LoginRequest{Email: "bad-email", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
