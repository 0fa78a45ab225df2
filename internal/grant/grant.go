package grant

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grantify/grant-management/internal/view"
)

type Grant struct {
	ID                string           `json:"id" gorm:"primaryKey"`
	GrantName         string           `json:"grantName" gorm:"column:grant_name;not null"`
	SponsoringAgency  *string          `json:"sponsoringAgency,omitempty" gorm:"column:sponsoring_agency"`
	OpenDate          time.Time        `json:"openDate" gorm:"column:open_date"`
	CloseDate         time.Time        `json:"closeDate" gorm:"column:close_date"`
	Status            string           `json:"status" gorm:"not null"`
	AmountRequested   decimal.Decimal  `json:"amountRequested" gorm:"column:amount_requested;type:numeric"`
	AmountApproved    *decimal.Decimal `json:"amountApproved,omitempty" gorm:"column:amount_approved;type:numeric"`
	WriterName        *string          `json:"writerName,omitempty" gorm:"column:writer_name"`
	ApplicationURL    *string          `json:"applicationUrl,omitempty" gorm:"column:application_url"`
	ExpirationDate    *time.Time       `json:"expirationDate,omitempty" gorm:"column:expiration_date"`
	FundsReceivedDate *time.Time       `json:"dateWhenFundsWereReceived,omitempty" gorm:"column:date_when_funds_were_received"`
	Notes             *string          `json:"notes,omitempty"`
	CreatedAt         time.Time        `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt         time.Time        `json:"updatedAt" gorm:"column:updated_at"`
}

func (Grant) TableName() string {
	return "grants"
}

// GrantV1 is the API view of a grant: the stored row plus the status badge
// derived from the classification table.
type GrantV1 struct {
	Grant
	StatusBadge view.StatusBadge `json:"statusBadge"`
}

// ToV1 attaches the derived status badge to the stored row.
func (g Grant) ToV1() GrantV1 {
	return GrantV1{
		Grant:       g,
		StatusBadge: view.ClassifyStatus(g.Status),
	}
}

func ToV1Slice(grants []Grant) []GrantV1 {
	out := make([]GrantV1, len(grants))
	for i, g := range grants {
		out[i] = g.ToV1()
	}
	return out
}

var (
	ErrGrantNotFound = errors.New("grant not found")
)
