package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/grantify/grant-management/internal/auth"
)

// CapabilityGate builds per-route authorization middleware on top of the
// session evaluator. It is the only place capability checks happen;
// handlers never re-derive access themselves.
type CapabilityGate struct {
	logger *slog.Logger
}

func NewCapabilityGate(logger *slog.Logger) *CapabilityGate {
	return &CapabilityGate{logger: logger}
}

// RequireCapability denies the request unless the session holds the named
// capability. A missing session is a 401; a held session without the
// capability is a 403.
func (g *CapabilityGate) RequireCapability(displayName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := auth.SessionFromContext(r.Context())
			if !ok {
				g.logger.Warn("capability gate: no session in context", "capability", displayName)
				writeDenied(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !session.CanAccess(displayName) {
				g.logger.Warn("access denied: capability not held",
					"user_id", session.UserID,
					"capability", displayName)
				writeDenied(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeDenied(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
