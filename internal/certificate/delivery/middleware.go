package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/p2ppsr/myac/pkg/errors"
)

// IdentityKeyHeader carries the caller's identity key, verified by the
// mutual-authentication layer in front of this service. The handshake
// itself never reaches this process.
const IdentityKeyHeader = "X-Authrite-Identity-Key"

type contextKey string

const identityContextKey contextKey = "identityKey"

// identityMiddleware rejects any request that arrives without a verified
// identity key before it can touch the issuance workflow.
func (h *Handlers) identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityKey := r.Header.Get(IdentityKeyHeader)
		if identityKey == "" {
			writeErrorCode(w, appErrors.CodeUnauthenticated, "Request carries no verified identity key.")
			return
		}
		ctx := context.WithValue(r.Context(), identityContextKey, identityKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromContext(ctx context.Context) string {
	identityKey, _ := ctx.Value(identityContextKey).(string)
	return identityKey
}

// corsMiddleware allows the API to be used when CORS is enforced.
func (h *Handlers) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Private-Network", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger is a simple API request logger.
func (h *Handlers) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()

		next.ServeHTTP(w, r)

		h.logger.Info("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
