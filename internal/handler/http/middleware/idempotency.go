package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/symplora/lms-backend-go/internal/handler/http/response"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotentReplayedHeader  = "Idempotent-Replayed"
	idempotencyLockTTL        = 30 * time.Second
	idempotencyAnonymousActor = "anonymous"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

func idempotencyKeys(path, userID, key string) (cacheKey, lockKey string) {
	cacheKey = fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
	return cacheKey, cacheKey + ":lock"
}

// Idempotency replays the first response of a POST carrying an
// Idempotency-Key header. A duplicate that arrives while the first is still
// running gets 409. Redis failures let the request through unprotected.
func Idempotency(rdb redis.Cmdable, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyKeyHeader)
			if key == "" || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			userID := idempotencyAnonymousActor
			if claims, ok := ClaimsFromContext(r.Context()); ok {
				userID = claims.UserID
			}
			cacheKey, lockKey := idempotencyKeys(r.URL.Path, userID, key)
			ctx := r.Context()

			val, err := rdb.Get(ctx, cacheKey).Result()
			switch {
			case err == nil:
				var cached cachedResponse
				if err := json.Unmarshal([]byte(val), &cached); err == nil {
					replay(w, cached)
					return
				}
				slog.Warn("discarding unreadable idempotency entry", "key", cacheKey)
			case !errors.Is(err, redis.Nil):
				slog.Warn("idempotency lookup failed", "key", cacheKey, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			locked, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
			if err != nil {
				slog.Warn("idempotency lock failed", "key", lockKey, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !locked {
				response.Conflict(w, "A request with this Idempotency-Key is already being processed")
				return
			}
			// Releasing and storing must survive a client that hung up.
			detached := context.WithoutCancel(ctx)
			defer func() {
				if err := rdb.Del(detached, lockKey).Err(); err != nil {
					slog.Warn("failed to release idempotency lock", "key", lockKey, "error", err)
				}
			}()

			var body bytes.Buffer
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusInternalServerError {
				return
			}

			payload, err := json.Marshal(cachedResponse{
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        body.String(),
			})
			if err != nil {
				slog.Warn("failed to encode idempotent response", "key", cacheKey, "error", err)
				return
			}
			if err := rdb.Set(detached, cacheKey, string(payload), ttl).Err(); err != nil {
				slog.Warn("failed to store idempotent response", "key", cacheKey, "error", err)
			}
		})
	}
}

func replay(w http.ResponseWriter, cached cachedResponse) {
	if cached.ContentType != "" {
		w.Header().Set("Content-Type", cached.ContentType)
	}
	w.Header().Set(IdempotentReplayedHeader, "true")
	w.WriteHeader(cached.Status)
	_, _ = w.Write([]byte(cached.Body))
}
