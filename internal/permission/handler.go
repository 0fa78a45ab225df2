package permission

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/grantify/grant-management/internal/transport"
	"github.com/grantify/grant-management/pkg/logger"
)

type ServiceAPI interface {
	Catalog() ([]Permission, error)
	AssociationsForUser(userID string) ([]UserPermissionAssociation, error)
	Grant(userID string, permissionTypeID int64) (*UserPermissionAssociation, error)
	Revoke(id string) (*UserPermissionAssociation, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// GetCatalog handles GET /permissions.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.Service.Catalog()
	if err != nil {
		h.Logger.Error("GetCatalog: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get permissions")
		return
	}

	h.WriteJSON(w, http.StatusOK, permissions)
}

// GetUserPermissions handles GET /users/{id}/user-permissions.
func (h *Handler) GetUserPermissions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	associations, err := h.Service.AssociationsForUser(userID)
	if err != nil {
		h.Logger.Error("GetUserPermissions: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get user permissions")
		return
	}

	if associations == nil {
		associations = []UserPermissionAssociation{}
	}

	h.WriteJSON(w, http.StatusOK, associations)
}

type grantPermissionDTO struct {
	PermissionTypeID int64 `json:"permissionTypeId"`
}

// GrantPermission handles POST /users/{id}/user-permissions.
func (h *Handler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var dto grantPermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("GrantPermission: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if dto.PermissionTypeID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "permissionTypeId is required")
		return
	}

	assn, err := h.Service.Grant(userID, dto.PermissionTypeID)
	if err != nil {
		h.Logger.Error("GrantPermission: service error", "error", err, "user_id", userID)

		switch err {
		case ErrPermissionNotFound:
			h.WriteError(w, http.StatusNotFound, "permission type not found")
		case ErrAlreadyGranted:
			h.WriteError(w, http.StatusConflict, "permission already granted")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to grant permission")
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, assn)
}

// RevokePermission handles DELETE /users/{id}/user-permissions/{assnId}.
func (h *Handler) RevokePermission(w http.ResponseWriter, r *http.Request) {
	assnID := chi.URLParam(r, "assnId")

	assn, err := h.Service.Revoke(assnID)
	if err != nil {
		h.Logger.Error("RevokePermission: service error", "error", err, "association_id", assnID)

		switch err {
		case ErrAssociationNotFound:
			h.WriteError(w, http.StatusNotFound, "association not found")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to revoke permission")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, assn)
}
