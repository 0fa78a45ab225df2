package expense

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/grantify/grant-management/internal/grant"
	"github.com/grantify/grant-management/internal/view"
)

// Repository defines the data access methods for expenses.
type Repository interface {
	GetByGrant(grantID string) ([]Expense, error)
	GetByID(id string) (*Expense, error)
	Create(e *Expense) error
	Delete(id string) error
}

// GrantGetter resolves the owning grant; the expense view embeds it and
// the balance needs its approved amount.
type GrantGetter interface {
	GetByID(id string) (*grant.Grant, error)
}

type Service struct {
	repo   Repository
	grants GrantGetter
	logger *slog.Logger
}

func NewService(repo Repository, grants GrantGetter, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		grants: grants,
		logger: logger,
	}
}

// GrantExpensesView is the payload for the per-grant expense screen: the
// grant itself, the (possibly filtered) expenses, and the remaining
// balance when it is defined.
type GrantExpensesView struct {
	Grant            grant.GrantV1 `json:"grant"`
	Expenses         []Expense     `json:"expenses"`
	RemainingBalance *string       `json:"remainingBalance,omitempty"`
}

// ViewByGrant builds the expense view for one grant. The remaining balance
// is computed over all of the grant's expenses, not the filtered subset,
// and is omitted whenever it is undefined (no approved amount or no
// expenses at all).
func (s *Service) ViewByGrant(grantID string, filter FilterParams) (*GrantExpensesView, error) {
	g, err := s.grants.GetByID(grantID)
	if err != nil {
		return nil, grant.ErrGrantNotFound
	}

	expenses, err := s.repo.GetByGrant(grantID)
	if err != nil {
		s.logger.Error("failed to load expenses", "error", err, "grant_id", grantID)
		return nil, err
	}

	result := &GrantExpensesView{
		Grant:    g.ToV1(),
		Expenses: Filter(expenses, filter),
	}

	if balance, ok := view.RemainingBalance(g.AmountApproved, expenses, Expense.SpentAmount); ok {
		formatted := view.FormatCurrency(balance)
		result.RemainingBalance = &formatted
	}

	return result, nil
}

// Filter narrows expenses by name substring and reporting period. Rows
// with malformed dates never match a period filter.
func Filter(expenses []Expense, params FilterParams) []Expense {
	name := strings.ToLower(strings.TrimSpace(params.Name))
	matched := make([]Expense, 0, len(expenses))

	for _, e := range expenses {
		if name != "" && !strings.Contains(strings.ToLower(e.Name), name) {
			continue
		}
		if params.Month != 0 || params.Year != 0 {
			month, year, ok := e.Period()
			if !ok {
				continue
			}
			if params.Month != 0 && month != params.Month {
				continue
			}
			if params.Year != 0 && year != params.Year {
				continue
			}
		}
		matched = append(matched, e)
	}
	return matched
}

// Create records an expense against an existing grant.
func (s *Service) Create(grantID string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.grants.GetByID(grantID); err != nil {
		return nil, grant.ErrGrantNotFound
	}

	e := &Expense{
		ID:           uuid.NewString(),
		GrantID:      grantID,
		Name:         strings.TrimSpace(dto.Name),
		LineItemCode: dto.LineItemCode,
		Budget:       dto.Budget,
		AmountSpent:  dto.AmountSpent,
		Date:         dto.Date,
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create expense", "error", err, "grant_id", grantID)
		return nil, err
	}

	s.logger.Info("expense created", "expense_id", e.ID, "grant_id", grantID, "name", e.Name)
	return e, nil
}

// Remove deletes one expense from a grant. The row is loaded and checked
// against the grant first; success is reported only after storage commits.
func (s *Service) Remove(grantID, expenseID string) (*Expense, error) {
	e, err := s.repo.GetByID(expenseID)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	if e.GrantID != grantID {
		return nil, ErrExpenseNotFound
	}

	if err := s.repo.Delete(e.ID); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", expenseID)
		return nil, err
	}

	s.logger.Info("expense deleted", "expense_id", e.ID, "grant_id", grantID)
	return e, nil
}
