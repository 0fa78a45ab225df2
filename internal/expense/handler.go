package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/grantify/grant-management/internal/grant"
	"github.com/grantify/grant-management/internal/transport"
	"github.com/grantify/grant-management/pkg/logger"
)

type ServiceAPI interface {
	ViewByGrant(grantID string, filter FilterParams) (*GrantExpensesView, error)
	Create(grantID string, dto CreateExpenseDTO) (*Expense, error)
	Remove(grantID, expenseID string) (*Expense, error)
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

// GetGrantView handles GET /grants/view/{grantId} with optional name,
// month and year filters.
func (h *Handler) GetGrantView(w http.ResponseWriter, r *http.Request) {
	grantID := chi.URLParam(r, "grantId")
	q := r.URL.Query()

	filter := FilterParams{Name: q.Get("name")}
	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			h.WriteError(w, http.StatusBadRequest, "month must be between 1 and 12")
			return
		}
		filter.Month = month
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 0 {
			h.WriteError(w, http.StatusBadRequest, "year must be a positive integer")
			return
		}
		filter.Year = year
	}

	result, err := h.Service.ViewByGrant(grantID, filter)
	if err != nil {
		h.writeServiceError(w, err, "failed to load grant expenses")
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// CreateExpense handles POST /grants/view/{grantId}.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	grantID := chi.URLParam(r, "grantId")

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Create(grantID, dto)
	if err != nil {
		h.writeServiceError(w, err, "failed to create expense")
		return
	}

	h.WriteJSON(w, http.StatusCreated, e)
}

// DeleteExpense handles DELETE /grants/view/{grantId}/{expenseId}. The
// deletion is confirmed by storage before the row is echoed back.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	grantID := chi.URLParam(r, "grantId")
	expenseID := chi.URLParam(r, "expenseId")

	e, err := h.Service.Remove(grantID, expenseID)
	if err != nil {
		h.writeServiceError(w, err, "failed to delete expense")
		return
	}

	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	h.Logger.Error("expense handler: service error", "error", err)

	switch err {
	case grant.ErrGrantNotFound:
		h.WriteError(w, http.StatusNotFound, "grant not found")
	case ErrExpenseNotFound:
		h.WriteError(w, http.StatusNotFound, "expense not found")
	default:
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteError(w, http.StatusInternalServerError, fallback)
	}
}
