package repositories

import (
	"database/sql"
	"errors"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

type AdminRepo struct {
	DB *sql.DB
}

func (r AdminRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AdminRepo) GetByEmail(email string) (models.Admin, string, error) {
	var a models.Admin
	var hash string
	err := r.db().QueryRow(`
		SELECT admin_id, name, email, password, COALESCE(phone,'')
		FROM admin
		WHERE email = ?
	`, email).Scan(&a.AdminID, &a.Name, &a.Email, &hash, &a.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, "", domain.NotFoundError{Resource: "admin"}
		}
		return models.Admin{}, "", domain.InternalError{Err: err}
	}
	return a, hash, nil
}

func (r AdminRepo) GetByID(id int64) (models.Admin, error) {
	var a models.Admin
	err := r.db().QueryRow(`
		SELECT admin_id, name, email, COALESCE(phone,'')
		FROM admin
		WHERE admin_id = ?
	`, id).Scan(&a.AdminID, &a.Name, &a.Email, &a.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, domain.NotFoundError{Resource: "admin"}
		}
		return models.Admin{}, domain.InternalError{Err: err}
	}
	return a, nil
}
