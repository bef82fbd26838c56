package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"

	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/handler/http/middleware"
	"github.com/symplora/lms-backend-go/internal/handler/http/response"
	"github.com/symplora/lms-backend-go/internal/pkg/jwt"
	"github.com/symplora/lms-backend-go/internal/pkg/rbac"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	LoginLimiter   *middleware.IPRateLimiter
	// Redis backs Idempotency-Key handling; nil turns it off.
	Redis          redis.Cmdable
	IdempotencyTTL time.Duration
}

type infoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Env     string `json:"env"`
	Time    string `json:"time"`
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, authorizer rbac.Authorizer, authHandler AuthHandler, employeeHandler EmployeeHandler, leaveHandler LeaveHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyKeyHeader},
		ExposedHeaders:   []string{middleware.IdempotentReplayedHeader},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	loginLimit := func(next http.Handler) http.Handler { return next }
	if cfg.LoginLimiter != nil {
		loginLimit = cfg.LoginLimiter.Middleware
	}
	idempotent := func(next http.Handler) http.Handler { return next }
	if cfg.Redis != nil {
		idempotent = middleware.Idempotency(cfg.Redis, cfg.IdempotencyTTL)
	}
	can := func(permissions ...user.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(authorizer, permissions...)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, infoResponse{
				Name:    cfg.AppName,
				Version: cfg.Version,
				Env:     cfg.Env,
				Time:    time.Now().UTC().Format(time.RFC3339),
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimit).Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.With(can(user.PermissionEmployeeCreate), idempotent).Post("/", employeeHandler.CreateEmployee)
				r.With(can(user.PermissionEmployeeReadAll)).Get("/", employeeHandler.ListEmployees)

				r.Route("/{id}", func(r chi.Router) {
					// Own-record reads are narrowed further in the handler.
					r.With(can(user.PermissionEmployeeReadAll, user.PermissionEmployeeReadOwn)).Get("/", employeeHandler.GetEmployee)
					r.With(can(user.PermissionEmployeeReadAll, user.PermissionEmployeeReadOwn)).Get("/leave-balance", employeeHandler.GetLeaveBalance)
					r.With(can(user.PermissionEmployeeUpdate)).Put("/", employeeHandler.UpdateEmployee)
					r.With(can(user.PermissionEmployeeDelete)).Delete("/", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(can(user.PermissionLeaveApply), idempotent).Post("/apply", leaveHandler.ApplyLeave)
				r.With(can(user.PermissionLeaveReadOwn)).Get("/me", leaveHandler.ListMyLeaves)
				r.With(can(user.PermissionLeaveReadAll)).Get("/all", leaveHandler.ListAllLeaves)
				r.With(can(user.PermissionLeaveValidate)).Put("/{id}/validate", leaveHandler.ValidateLeave)
			})
		})
	})
	return r
}
