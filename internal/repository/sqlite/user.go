package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/user"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) user.UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if newUser.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return user.User{}, fmt.Errorf("generate user id: %w", err)
		}
		newUser.ID = id.String()
	}

	m := newUserModel(newUser)
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		return user.User{}, mapError(err, nil, employee.ErrEmployeeNotFound)
	}
	return m.toDomain(), nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var m userModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return user.User{}, mapError(err, user.ErrUserNotFound, nil)
	}
	return m.toDomain(), nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var m userModel
	if err := getDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		return user.User{}, mapError(err, user.ErrUserNotFound, nil)
	}
	return m.toDomain(), nil
}

func (r *GormUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error {
	res := getDB(ctx, r.db).Model(&userModel{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":  passwordHash,
		"is_first_login": isFirstLogin,
		"updated_at":     time.Now().UTC(),
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
