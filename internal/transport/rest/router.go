package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/grantify/grant-management/internal/attachment"
	"github.com/grantify/grant-management/internal/auth"
	"github.com/grantify/grant-management/internal/expense"
	"github.com/grantify/grant-management/internal/grant"
	"github.com/grantify/grant-management/internal/permission"
	"github.com/grantify/grant-management/internal/transport/middleware"
	"github.com/grantify/grant-management/internal/transport/swagger"
	"github.com/grantify/grant-management/internal/user"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	User       *user.Handler
	Grant      *grant.Handler
	Expense    *expense.Handler
	Attachment *attachment.Handler
	Permission *permission.Handler
}

// RegisterAllRoutes wires the full HTTP surface. Capability gates run
// after the auth middleware has loaded a session; every denial is a plain
// status code the client can act on.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	gate := middleware.NewCapabilityGate(logger)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and swagger UI live at the site root, outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/sessions", func(sr chi.Router) {
			sr.Post("/", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Everything below requires a valid session
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/profile", h.User.GetProfile)
			pr.Put("/profile", h.User.UpdateProfile)

			pr.Route("/grants", func(gr chi.Router) {
				gr.With(gate.RequireCapability(permission.CapViewGrant)).
					Get("/", h.Grant.GetGrants)
				gr.With(gate.RequireCapability(permission.CapAddGrant)).
					Post("/", h.Grant.CreateGrant)

				gr.Route("/view/{grantId}", func(vr chi.Router) {
					vr.With(gate.RequireCapability(permission.CapViewGrant)).
						Get("/", h.Expense.GetGrantView)
					vr.With(gate.RequireCapability(permission.CapEditGrant)).
						Post("/", h.Expense.CreateExpense)
					vr.With(gate.RequireCapability(permission.CapEditGrant)).
						Delete("/{expenseId}", h.Expense.DeleteExpense)
				})

				gr.Route("/{grantId}/attachments", func(ar chi.Router) {
					ar.With(gate.RequireCapability(permission.CapViewGrant)).
						Get("/", h.Attachment.GetAttachments)
					ar.With(gate.RequireCapability(permission.CapEditGrant)).
						Post("/", h.Attachment.CreateAttachment)
				})

				gr.Route("/{id}", func(ir chi.Router) {
					ir.With(gate.RequireCapability(permission.CapViewGrant)).
						Get("/", h.Grant.GetGrant)
					ir.With(gate.RequireCapability(permission.CapEditGrant)).
						Put("/", h.Grant.UpdateGrant)
					ir.With(gate.RequireCapability(permission.CapDeleteGrant)).
						Delete("/", h.Grant.DeleteGrant)
				})
			})

			pr.Get("/permissions", h.Permission.GetCatalog)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/", h.User.GetUsers)
				ur.Post("/", h.User.CreateUser)
				ur.With(gate.RequireCapability(permission.CapEditPermissions)).
					Delete("/{id}", h.User.DeleteUser)

				ur.Route("/{id}/user-permissions", func(upr chi.Router) {
					upr.Get("/", h.Permission.GetUserPermissions)
					upr.With(gate.RequireCapability(permission.CapEditPermissions)).
						Post("/", h.Permission.GrantPermission)
					upr.With(gate.RequireCapability(permission.CapEditPermissions)).
						Delete("/{assnId}", h.Permission.RevokePermission)
				})
			})
		})
	})
}
