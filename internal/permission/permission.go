package permission

import (
	"errors"
	"time"
)

// Capability display names known to the catalog. The catalog itself lives in
// the database; these constants exist so call sites don't scatter string
// literals.
const (
	CapViewGrant       = "viewGrant"
	CapEditGrant       = "editGrant"
	CapDeleteGrant     = "deleteGrant"
	CapAddGrant        = "addGrant"
	CapEditPermissions = "editPermissions"
)

// Permission is one catalog entry for a named capability. The catalog is
// immutable from the API consumer's perspective and fetched wholesale.
type Permission struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	DisplayName string    `json:"displayName" gorm:"column:display_name;uniqueIndex;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Permission) TableName() string {
	return "permission_types"
}

// UserPermissionAssociation grants one catalog permission to one user.
// Many-to-many realized as a flat join table.
type UserPermissionAssociation struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"userId" gorm:"column:user_id;not null"`
	PermissionTypeID int64     `json:"permissionTypeId" gorm:"column:permission_type_id;not null"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (UserPermissionAssociation) TableName() string {
	return "permission_types_users_assn"
}

var (
	ErrPermissionNotFound  = errors.New("permission not found")
	ErrAssociationNotFound = errors.New("user permission association not found")
	ErrAlreadyGranted      = errors.New("permission already granted to user")
)
