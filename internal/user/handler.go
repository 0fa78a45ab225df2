package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/grantify/grant-management/internal/auth"
	"github.com/grantify/grant-management/internal/transport"
	"github.com/grantify/grant-management/pkg/logger"
)

type ServiceAPI interface {
	List() ([]User, error)
	GetByID(id string) (*User, error)
	Create(dto CreateUserDTO) (*User, error)
	UpdateProfile(id string, dto UpdateProfileDTO) (*User, error)
	Delete(id string) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetUsers handles GET /users.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List()
	if err != nil {
		h.Logger.Error("GetUsers: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("CreateUser: service error", "error", err)

		switch {
		case err == ErrEmailTaken:
			h.WriteError(w, http.StatusConflict, "email already registered")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "failed to create user")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusCreated, u)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.Service.Delete(id)
	if err != nil {
		h.Logger.Error("DeleteUser: service error", "error", err, "user_id", id)

		switch err {
		case ErrNotFound:
			h.WriteError(w, http.StatusNotFound, "user not found")
		default:
			h.WriteError(w, http.StatusInternalServerError, "failed to delete user")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

// GetProfile handles GET /profile for the authenticated user.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetByID(session.UserID)
	if err != nil {
		h.Logger.Error("GetProfile: service error", "error", err, "user_id", session.UserID)
		h.WriteError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	h.WriteJSON(w, http.StatusOK, profileResponse{
		User:         u,
		Capabilities: session.Capabilities(),
	})
}

// UpdateProfile handles PUT /profile for the authenticated user.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.UpdateProfile(session.UserID, dto)
	if err != nil {
		h.Logger.Error("UpdateProfile: service error", "error", err, "user_id", session.UserID)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err == ErrWrongPassword {
			h.WriteError(w, http.StatusBadRequest, "current password is incorrect")
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

// profileResponse bundles the account with the capability names the
// session can access, so the client renders menus without re-deriving
// access rules.
type profileResponse struct {
	User         *User    `json:"user"`
	Capabilities []string `json:"capabilities"`
}
