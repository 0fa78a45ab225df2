package postgres

import (
	"github.com/grantify/grant-management/internal/attachment"
	"gorm.io/gorm"
)

// AttachmentRepository implements attachment.Repository using GORM.
type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) attachment.Repository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) GetByGrant(grantID string) ([]attachment.Attachment, error) {
	var attachments []attachment.Attachment
	err := r.db.Where("grant_id = ?", grantID).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}

func (r *AttachmentRepository) Create(a *attachment.Attachment) error {
	return r.db.Create(a).Error
}
