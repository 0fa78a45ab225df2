package postgres

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/grantify/grant-management/internal/auth"
	"github.com/grantify/grant-management/internal/permission"
)

// Repository reads credential and session rows with plain SQL. Auth runs on
// every request, so it stays on sqlx instead of the ORM the domain repos use.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentialsByEmail(email string) (string, string, error) {
	var row struct {
		ID           string `db:"id"`
		PasswordHash string `db:"password_hash"`
	}

	query := `SELECT id, password_hash FROM users WHERE email = $1`
	if err := r.db.Get(&row, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", auth.ErrUserNotFound
		}
		return "", "", err
	}
	return row.ID, row.PasswordHash, nil
}

func (r *Repository) GetUserByID(userID string) (*auth.UserInfo, error) {
	var user auth.UserInfo

	query := `SELECT id, email, first_name, last_name, created_at, updated_at
	          FROM users WHERE id = $1`
	if err := r.db.Get(&user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetPermissionCatalog() ([]permission.Permission, error) {
	var rows []struct {
		ID          int64  `db:"id"`
		DisplayName string `db:"display_name"`
	}

	query := `SELECT id, display_name FROM permission_types ORDER BY id ASC`
	if err := r.db.Select(&rows, query); err != nil {
		return nil, err
	}

	catalog := make([]permission.Permission, 0, len(rows))
	for _, row := range rows {
		catalog = append(catalog, permission.Permission{
			ID:          row.ID,
			DisplayName: row.DisplayName,
		})
	}
	return catalog, nil
}

func (r *Repository) GetAssociationsForUser(userID string) ([]permission.UserPermissionAssociation, error) {
	var rows []struct {
		ID               string `db:"id"`
		UserID           string `db:"user_id"`
		PermissionTypeID int64  `db:"permission_type_id"`
	}

	query := `SELECT id, user_id, permission_type_id
	          FROM permission_types_users_assn WHERE user_id = $1`
	if err := r.db.Select(&rows, query, userID); err != nil {
		return nil, err
	}

	associations := make([]permission.UserPermissionAssociation, 0, len(rows))
	for _, row := range rows {
		associations = append(associations, permission.UserPermissionAssociation{
			ID:               row.ID,
			UserID:           row.UserID,
			PermissionTypeID: row.PermissionTypeID,
		})
	}
	return associations, nil
}
