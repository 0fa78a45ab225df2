package grant

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/grantify/grant-management/internal/transport"
	"github.com/grantify/grant-management/pkg/logger"
)

type ServiceAPI interface {
	List(params ListParams) (*GrantPage, error)
	UpcomingDeadlines(dayRange int) ([]GrantV1, error)
	GetByID(id string) (*Grant, error)
	Create(dto CreateGrantDTO) (*Grant, error)
	Update(id string, dto UpdateGrantDTO) (*Grant, error)
	Delete(id string) (*Grant, error)
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

// GetGrants handles GET /grants. A `days` query switches to the upcoming
// deadline view; otherwise the paginated index is served.
func (h *Handler) GetGrants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if daysParam := q.Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days < 0 {
			h.WriteError(w, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}

		grants, err := h.Service.UpcomingDeadlines(days)
		if err != nil {
			h.Logger.Error("GetGrants: deadline view failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "failed to load grants")
			return
		}

		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"grants": grants})
		return
	}

	params := ListParams{
		Name:     q.Get("name"),
		Page:     parseIntOrDefault(q.Get("page"), 1),
		PageSize: parseIntOrDefault(q.Get("per_page"), DefaultPageSize),
	}

	page, err := h.Service.List(params)
	if err != nil {
		h.Logger.Error("GetGrants: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to load grants")
		return
	}

	h.WriteJSON(w, http.StatusOK, page)
}

// GetGrant handles GET /grants/{id}.
func (h *Handler) GetGrant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, err := h.Service.GetByID(id)
	if err != nil {
		h.writeServiceError(w, err, "failed to load grant")
		return
	}

	h.WriteJSON(w, http.StatusOK, g.ToV1())
}

// CreateGrant handles POST /grants.
func (h *Handler) CreateGrant(w http.ResponseWriter, r *http.Request) {
	var dto CreateGrantDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.Service.Create(dto)
	if err != nil {
		h.writeServiceError(w, err, "failed to create grant")
		return
	}

	h.WriteJSON(w, http.StatusCreated, g.ToV1())
}

// UpdateGrant handles PUT /grants/{id}.
func (h *Handler) UpdateGrant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateGrantDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.Service.Update(id, dto)
	if err != nil {
		h.writeServiceError(w, err, "failed to update grant")
		return
	}

	h.WriteJSON(w, http.StatusOK, g.ToV1())
}

// DeleteGrant handles DELETE /grants/{id}. The deleted record is echoed
// back only after storage confirms the removal.
func (h *Handler) DeleteGrant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, err := h.Service.Delete(id)
	if err != nil {
		h.writeServiceError(w, err, "failed to delete grant")
		return
	}

	h.WriteJSON(w, http.StatusOK, g.ToV1())
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	h.Logger.Error("grant handler: service error", "error", err)

	switch {
	case err == ErrGrantNotFound:
		h.WriteError(w, http.StatusNotFound, "grant not found")
	default:
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteError(w, http.StatusInternalServerError, fallback)
	}
}

func parseIntOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
