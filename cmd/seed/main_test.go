package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/symplora/lms-backend-go/internal/domain/user"
	usermock "github.com/symplora/lms-backend-go/internal/domain/user/mock"
)

func TestEnsureAccount_Creates(t *testing.T) {
	users := usermock.NewMockUserRepository(gomock.NewController(t))

	users.EXPECT().GetByEmail(gomock.Any(), "hr@company.com").Return(user.User{}, user.ErrUserNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u user.User) (user.User, error) {
			assert.Equal(t, user.RoleHR, u.Role)
			assert.Nil(t, u.EmployeeID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hr-password")))
			u.ID = "hr-id"
			return u, nil
		})

	created, err := ensureAccount(context.Background(), users, " HR@company.com ", "hr-password", user.RoleHR, bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestEnsureAccount_ExistingIsLeftAlone(t *testing.T) {
	users := usermock.NewMockUserRepository(gomock.NewController(t))
	users.EXPECT().GetByEmail(gomock.Any(), "hr@company.com").Return(user.User{ID: "hr-id"}, nil)

	created, err := ensureAccount(context.Background(), users, "hr@company.com", "", user.RoleHR, bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureAccount_Rejects(t *testing.T) {
	users := usermock.NewMockUserRepository(gomock.NewController(t))

	_, err := ensureAccount(context.Background(), users, "hr@company.com", "hr-password", user.RoleEmployee, bcrypt.MinCost)
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = ensureAccount(context.Background(), users, "not-an-email", "hr-password", user.RoleHR, bcrypt.MinCost)
	assert.Error(t, err)

	users.EXPECT().GetByEmail(gomock.Any(), "hr@company.com").Return(user.User{}, user.ErrUserNotFound)
	_, err = ensureAccount(context.Background(), users, "hr@company.com", "short", user.RoleHR, bcrypt.MinCost)
	assert.ErrorContains(t, err, "at least 8")

	boom := errors.New("connection refused")
	users.EXPECT().GetByEmail(gomock.Any(), "hr@company.com").Return(user.User{}, boom)
	_, err = ensureAccount(context.Background(), users, "hr@company.com", "hr-password", user.RoleHR, bcrypt.MinCost)
	assert.ErrorIs(t, err, boom)
}
