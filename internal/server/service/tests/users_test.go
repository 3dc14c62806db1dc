package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/models"
	"github.com/IvanChernomyrdin/go-userhub/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-userhub/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
)

func NewTestUsersService(t *testing.T) (*service.UsersService, *svcmocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	return service.NewUsersService(users), users
}

// В списке только безопасные поля
func TestUsersService_List_ProjectsSafeFields(t *testing.T) {
	t.Parallel()

	svc, users := NewTestUsersService(t)

	id := uuid.New()
	created := time.Now()

	users.EXPECT().
		List(gomock.Any()).
		Return([]models.User{
			{ID: id, Name: "Al", Email: "a@b.com", PasswordHash: "hash", CreatedAt: created},
		}, nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 user, got %d", len(got))
	}
	if got[0].ID != id || got[0].Name != "Al" || got[0].Email != "a@b.com" {
		t.Fatalf("unexpected projection: %+v", got[0])
	}
}

// Пустая таблица — пустой срез, а не nil (сериализуется как [])
func TestUsersService_List_Empty(t *testing.T) {
	t.Parallel()

	svc, users := NewTestUsersService(t)

	users.EXPECT().
		List(gomock.Any()).
		Return(nil, nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 users, got %d", len(got))
	}
}

func TestUsersService_Delete_OK(t *testing.T) {
	t.Parallel()

	svc, users := NewTestUsersService(t)

	id := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), id).
		Return(models.User{ID: id}, nil)
	users.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Повторное удаление уже удалённого id — not found, а не ошибка сервера
func TestUsersService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	svc, users := NewTestUsersService(t)

	id := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), id).
		Return(models.User{}, serr.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
