package postgres

import (
	"github.com/grantify/grant-management/internal/grant"
	"gorm.io/gorm"
)

// GrantRepository implements grant.Repository using GORM.
type GrantRepository struct {
	db *gorm.DB
}

func NewGrantRepository(db *gorm.DB) grant.Repository {
	return &GrantRepository{db: db}
}

func (r *GrantRepository) GetAll() ([]grant.Grant, error) {
	var grants []grant.Grant
	err := r.db.Order("close_date ASC").Find(&grants).Error
	return grants, err
}

func (r *GrantRepository) Search(name string) ([]grant.Grant, error) {
	var grants []grant.Grant
	err := r.db.Where("LOWER(grant_name) LIKE LOWER(?)", "%"+name+"%").
		Order("close_date ASC").
		Find(&grants).Error
	return grants, err
}

func (r *GrantRepository) GetByID(id string) (*grant.Grant, error) {
	var g grant.Grant
	err := r.db.Where("id = ?", id).First(&g).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, grant.ErrGrantNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GrantRepository) Create(g *grant.Grant) error {
	return r.db.Create(g).Error
}

func (r *GrantRepository) Update(g *grant.Grant) error {
	return r.db.Save(g).Error
}

func (r *GrantRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&grant.Grant{}).Error
}
