package grant

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grantify/grant-management/internal/view"
)

// CreateGrantDTO is the transport shape for registering a grant.
type CreateGrantDTO struct {
	GrantName         string           `json:"grantName"`
	SponsoringAgency  *string          `json:"sponsoringAgency"`
	OpenDate          time.Time        `json:"openDate"`
	CloseDate         time.Time        `json:"closeDate"`
	Status            string           `json:"status"`
	AmountRequested   decimal.Decimal  `json:"amountRequested"`
	AmountApproved    *decimal.Decimal `json:"amountApproved"`
	WriterName        *string          `json:"writerName"`
	ApplicationURL    *string          `json:"applicationUrl"`
	ExpirationDate    *time.Time       `json:"expirationDate"`
	FundsReceivedDate *time.Time       `json:"dateWhenFundsWereReceived"`
	Notes             *string          `json:"notes"`
}

// UpdateGrantDTO carries the same fields; the whole record is replaced, as
// the edit form submits every field.
type UpdateGrantDTO = CreateGrantDTO

// ListParams are the query options for the grant index.
type ListParams struct {
	Name     string
	Page     int
	PageSize int
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateGrantDTO) Validate() error {
	if strings.TrimSpace(d.GrantName) == "" {
		return ValidationError{Msg: "grantName is required"}
	}
	if d.Status == "" {
		return ValidationError{Msg: "status is required"}
	}
	if !view.IsKnownStatus(d.Status) {
		return ValidationError{Msg: "status is not a recognized value"}
	}
	if d.OpenDate.IsZero() {
		return ValidationError{Msg: "openDate is required"}
	}
	if d.CloseDate.IsZero() {
		return ValidationError{Msg: "closeDate is required"}
	}
	if d.CloseDate.Before(d.OpenDate) {
		return ValidationError{Msg: "closeDate cannot be before openDate"}
	}
	if d.AmountRequested.IsNegative() {
		return ValidationError{Msg: "amountRequested cannot be negative"}
	}
	if d.AmountApproved != nil && d.AmountApproved.IsNegative() {
		return ValidationError{Msg: "amountApproved cannot be negative"}
	}
	return nil
}

func (d CreateGrantDTO) apply(g *Grant) {
	g.GrantName = strings.TrimSpace(d.GrantName)
	g.SponsoringAgency = d.SponsoringAgency
	g.OpenDate = d.OpenDate
	g.CloseDate = d.CloseDate
	g.Status = d.Status
	g.AmountRequested = d.AmountRequested
	g.AmountApproved = d.AmountApproved
	g.WriterName = d.WriterName
	g.ApplicationURL = d.ApplicationURL
	g.ExpirationDate = d.ExpirationDate
	g.FundsReceivedDate = d.FundsReceivedDate
	g.Notes = d.Notes
}
