package attachment

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/grantify/grant-management/internal/grant"
	"github.com/grantify/grant-management/internal/transport"
	"github.com/grantify/grant-management/pkg/logger"
)

type ServiceAPI interface {
	ListByGrant(grantID string) ([]Attachment, error)
	Create(grantID string, dto CreateAttachmentDTO) (*Attachment, error)
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

// GetAttachments handles GET /grants/{grantId}/attachments.
func (h *Handler) GetAttachments(w http.ResponseWriter, r *http.Request) {
	grantID := chi.URLParam(r, "grantId")

	attachments, err := h.Service.ListByGrant(grantID)
	if err != nil {
		h.writeServiceError(w, err, "failed to load attachments")
		return
	}

	h.WriteJSON(w, http.StatusOK, attachments)
}

// CreateAttachment handles POST /grants/{grantId}/attachments.
func (h *Handler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	grantID := chi.URLParam(r, "grantId")

	var dto CreateAttachmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.Create(grantID, dto)
	if err != nil {
		h.writeServiceError(w, err, "failed to create attachment")
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	h.Logger.Error("attachment handler: service error", "error", err)

	switch err {
	case grant.ErrGrantNotFound:
		h.WriteError(w, http.StatusNotFound, "grant not found")
	default:
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteError(w, http.StatusInternalServerError, fallback)
	}
}
