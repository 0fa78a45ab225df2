package auth

import (
	"context"

	"github.com/grantify/grant-management/internal/permission"
)

// Session is the per-request authorization snapshot: the authenticated
// user plus the permission catalog and that user's association rows,
// loaded once by the middleware and passed explicitly from there on.
// Nothing here is cached across requests.
type Session struct {
	UserID       string
	Email        string
	Catalog      []permission.Permission
	Associations []permission.UserPermissionAssociation
}

// CanAccess reports whether the session's user holds the capability with
// the given display name. The answer comes from intersecting the catalog
// with the user's association rows; any missing piece means no.
func (s *Session) CanAccess(displayName string) bool {
	if s == nil || displayName == "" {
		return false
	}

	granted := make(map[int64]struct{}, len(s.Associations))
	for _, assn := range s.Associations {
		granted[assn.PermissionTypeID] = struct{}{}
	}

	for _, p := range s.Catalog {
		if _, ok := granted[p.ID]; ok && p.DisplayName == displayName {
			return true
		}
	}
	return false
}

// Capabilities returns the display names the user can access, in catalog
// order. Used by the profile endpoint so clients never re-derive access
// rules themselves.
func (s *Session) Capabilities() []string {
	caps := []string{}
	if s == nil {
		return caps
	}
	for _, p := range s.Catalog {
		if s.CanAccess(p.DisplayName) {
			caps = append(caps, p.DisplayName)
		}
	}
	return caps
}

type sessionCtxKey struct{}

// ContextWithSession stores the session for downstream handlers.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// SessionFromContext retrieves the session placed by the auth middleware.
// A missing session yields (nil, false) and callers must treat that as
// unauthenticated.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}
