package attachment

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Attachment is a named link stored against a grant. Files live wherever
// the link points; only the reference is kept here.
type Attachment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	GrantID   string    `json:"grantId" gorm:"column:grant_id;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Link      string    `json:"link" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// CreateAttachmentDTO is the transport shape for adding an attachment.
type CreateAttachmentDTO struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateAttachmentDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ValidationError{Msg: "name is required"}
	}
	if strings.TrimSpace(d.Link) == "" {
		return ValidationError{Msg: "link is required"}
	}
	if u, err := url.Parse(d.Link); err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Msg: "link must be an absolute URL"}
	}
	return nil
}

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
)
