// Command seed makes sure a privileged account exists so the first HR user
// can log in and create employees.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/symplora/lms-backend-go/internal/config"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
	"github.com/symplora/lms-backend-go/internal/repository"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	email := flag.String("email", cfg.Seed.HREmail, "account email")
	password := flag.String("password", cfg.Seed.HRPassword, "account password")
	role := flag.String("role", string(user.RoleHR), "account role (HR or ADMIN)")
	flag.Parse()

	ctx := context.Background()
	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	created, err := ensureAccount(ctx, repos.Users, *email, *password, user.Role(strings.ToUpper(*role)), cfg.App.BcryptCost)
	if err != nil {
		return err
	}
	if created {
		slog.Info("account created", "email", *email, "role", *role)
	} else {
		slog.Info("account already exists", "email", *email)
	}
	return nil
}

// ensureAccount creates a user without an employee profile unless one with
// the same email already exists.
func ensureAccount(ctx context.Context, users user.UserRepository, email, password string, role user.Role, cost int) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validator.IsValidEmail(email) {
		return false, fmt.Errorf("invalid email %q", email)
	}
	if role != user.RoleHR && role != user.RoleAdmin {
		return false, user.ErrInvalidRole
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if len(password) < 8 {
		return false, errors.New("HR_PASSWORD must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = users.Create(ctx, user.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if errors.Is(err, user.ErrUserEmailExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}
