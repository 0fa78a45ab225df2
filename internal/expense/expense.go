package expense

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one line item recorded against a grant. The date is stored
// as the "MM/YYYY" the reporting period uses, not a timestamp.
type Expense struct {
	ID           string           `json:"id" gorm:"primaryKey"`
	GrantID      string           `json:"grantId" gorm:"column:grant_id;not null;index"`
	Name         string           `json:"name" gorm:"not null"`
	LineItemCode *int64           `json:"lineItemCode,omitempty" gorm:"column:line_item_code"`
	Budget       *decimal.Decimal `json:"budget,omitempty" gorm:"type:numeric"`
	AmountSpent  *decimal.Decimal `json:"amountSpent,omitempty" gorm:"column:amount_spent;type:numeric"`
	Date         string           `json:"date" gorm:"not null"`
	CreatedAt    time.Time        `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time        `json:"updatedAt" gorm:"column:updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

// Period splits the MM/YYYY date. ok is false for malformed values so
// filters skip them instead of guessing.
func (e *Expense) Period() (month, year int, ok bool) {
	parts := strings.SplitN(e.Date, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, errM := strconv.Atoi(parts[0])
	year, errY := strconv.Atoi(parts[1])
	if errM != nil || errY != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return month, year, true
}

// SpentAmount treats a missing amount as zero for aggregation.
func (e Expense) SpentAmount() decimal.Decimal {
	if e.AmountSpent == nil {
		return decimal.Zero
	}
	return *e.AmountSpent
}

var (
	ErrExpenseNotFound = errors.New("expense not found")
)
