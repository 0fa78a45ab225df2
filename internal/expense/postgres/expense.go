package postgres

import (
	"github.com/grantify/grant-management/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements expense.Repository using GORM.
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) GetByGrant(grantID string) ([]expense.Expense, error) {
	var expenses []expense.Expense
	err := r.db.Where("grant_id = ?", grantID).
		Order("created_at ASC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) GetByID(id string) (*expense.Expense, error) {
	var e expense.Expense
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, expense.ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Create(e *expense.Expense) error {
	return r.db.Create(e).Error
}

func (r *ExpenseRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&expense.Expense{}).Error
}
