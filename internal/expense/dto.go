package expense

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var datePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

// CreateExpenseDTO is the transport shape for recording an expense
// against a grant.
type CreateExpenseDTO struct {
	Name         string           `json:"name"`
	LineItemCode *int64           `json:"lineItemCode"`
	Budget       *decimal.Decimal `json:"budget"`
	AmountSpent  *decimal.Decimal `json:"amountSpent"`
	Date         string           `json:"date"`
}

// FilterParams narrow the expense view. Zero values mean "no filter".
type FilterParams struct {
	Name  string
	Month int
	Year  int
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateExpenseDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ValidationError{Msg: "name is required"}
	}
	if !datePattern.MatchString(d.Date) {
		return ValidationError{Msg: "date must be in MM/YYYY format"}
	}
	if d.Budget != nil && d.Budget.IsNegative() {
		return ValidationError{Msg: "budget cannot be negative"}
	}
	if d.AmountSpent != nil && d.AmountSpent.IsNegative() {
		return ValidationError{Msg: "amountSpent cannot be negative"}
	}
	return nil
}
