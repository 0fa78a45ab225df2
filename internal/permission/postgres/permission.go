package postgres

import (
	"github.com/grantify/grant-management/internal/permission"
	"gorm.io/gorm"
)

// PermissionRepository implements permission.Repository using GORM.
type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) permission.Repository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) GetAll() ([]permission.Permission, error) {
	var permissions []permission.Permission
	err := r.db.Order("id ASC").Find(&permissions).Error
	return permissions, err
}

func (r *PermissionRepository) GetByID(id int64) (*permission.Permission, error) {
	var p permission.Permission
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, permission.ErrPermissionNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepository) GetAssociationsForUser(userID string) ([]permission.UserPermissionAssociation, error) {
	var associations []permission.UserPermissionAssociation
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&associations).Error
	return associations, err
}

func (r *PermissionRepository) GetAssociation(id string) (*permission.UserPermissionAssociation, error) {
	var assn permission.UserPermissionAssociation
	err := r.db.Where("id = ?", id).First(&assn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, permission.ErrAssociationNotFound
		}
		return nil, err
	}
	return &assn, nil
}

func (r *PermissionRepository) HasAssociation(userID string, permissionTypeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&permission.UserPermissionAssociation{}).
		Where("user_id = ? AND permission_type_id = ?", userID, permissionTypeID).
		Count(&count).Error
	return count > 0, err
}

func (r *PermissionRepository) CreateAssociation(assn *permission.UserPermissionAssociation) error {
	return r.db.Create(assn).Error
}

func (r *PermissionRepository) DeleteAssociation(id string) error {
	return r.db.Where("id = ?", id).Delete(&permission.UserPermissionAssociation{}).Error
}

func (r *PermissionRepository) DeleteAssociationsForUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&permission.UserPermissionAssociation{}).Error
}
