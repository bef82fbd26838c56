package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/symplora/lms-backend-go/internal/config"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	appHTTP "github.com/symplora/lms-backend-go/internal/handler/http"
	"github.com/symplora/lms-backend-go/internal/handler/http/middleware"
	"github.com/symplora/lms-backend-go/internal/pkg/cron"
	"github.com/symplora/lms-backend-go/internal/pkg/email"
	"github.com/symplora/lms-backend-go/internal/pkg/events"
	"github.com/symplora/lms-backend-go/internal/pkg/jwt"
	"github.com/symplora/lms-backend-go/internal/pkg/rbac"
	"github.com/symplora/lms-backend-go/internal/repository"
	serviceAuth "github.com/symplora/lms-backend-go/internal/service/auth"
	employeeService "github.com/symplora/lms-backend-go/internal/service/employee"
	"github.com/symplora/lms-backend-go/internal/service/leave"
)

const (
	appName = "lms-backend"
	version = "v1.0.0"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupLogger(cfg.App)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	var publisher events.Publisher = events.LogPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		slog.Info("publishing events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("failed to close event publisher", "error", err)
		}
	}()

	var rdb redis.Cmdable
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			slog.Warn("redis unreachable, idempotency keys are not enforced until it recovers", "addr", cfg.Redis.Addr, "error", err)
		}
		cancel()
		rdb = client
	}

	enforcer, err := rbac.NewEnforcer(user.RolePermissions)
	if err != nil {
		return err
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("initialize email service: %w", err)
	}
	if !emailService.Enabled() {
		slog.Warn("SMTP not configured, temporary passwords are returned to HR instead of emailed")
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(repos.Users, JWTService, cfg.App.BcryptCost)
	employeeSvc := employeeService.NewEmployeeService(
		repos.Transactor,
		repos.Employees,
		repos.Users,
		emailService,
		publisher,
		cfg.App.BcryptCost,
		cfg.Leave.DefaultBalance,
	)
	leaveService := leave.NewLeaveService(repos.Transactor, repos.LeaveRequests, repos.Employees, publisher)

	loginLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("login_limiter_sweep", time.Minute, loginLimiter.Sweep)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        appName,
			Version:        version,
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
			LoginLimiter:   loginLimiter,
			Redis:          rdb,
			IdempotencyTTL: cfg.Idempotency.TTL,
		},
		JWTService,
		enforcer,
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewEmployeeHandler(employeeSvc, enforcer),
		appHTTP.NewLeaveHandler(leaveService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupLogger(app config.AppConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(app.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", appName),
		slog.String("env", app.Env),
	)
	slog.SetDefault(logger)
}
