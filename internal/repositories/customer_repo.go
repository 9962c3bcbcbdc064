package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travel-backend/internal/config"
	intdb "travel-backend/internal/db"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type CustomerRepo struct {
	DB *sql.DB
}

func (r CustomerRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the customer row plus password hash for login.
func (r CustomerRepo) GetByEmail(email string) (models.Customer, string, error) {
	var c models.Customer
	var hash string
	err := r.db().QueryRow(`
		SELECT customer_id, full_name, COALESCE(address,''), email, COALESCE(phone,''), password
		FROM customer
		WHERE email = ?
	`, strings.TrimSpace(email)).Scan(&c.CustomerID, &c.FullName, &c.Address, &c.Email, &c.Phone, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, "", domain.NotFoundError{Resource: "customer"}
		}
		return models.Customer{}, "", domain.InternalError{Err: err}
	}
	return c, hash, nil
}

func (r CustomerRepo) GetByID(id int64) (models.Customer, error) {
	var c models.Customer
	err := r.db().QueryRow(`
		SELECT customer_id, full_name, COALESCE(address,''), email, COALESCE(phone,''),
		       COALESCE(id_type,''), COALESCE(id_number,''), COALESCE(gender,''), COALESCE(country,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM customer
		WHERE customer_id = ?
	`, id).Scan(&c.CustomerID, &c.FullName, &c.Address, &c.Email, &c.Phone,
		&c.IDType, &c.IDNumber, &c.Gender, &c.Country, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, domain.NotFoundError{Resource: "customer"}
		}
		return models.Customer{}, domain.InternalError{Err: err}
	}
	return c, nil
}

// Create inserts a new customer; duplicate email maps to ConflictError.
func (r CustomerRepo) Create(c models.Customer, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO customer (full_name, address, email, phone, password)
		VALUES (?, ?, ?, ?, ?)
	`, c.FullName, intdb.NullIfEmpty(c.Address), c.Email, intdb.NullIfEmpty(c.Phone), passwordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "email", Err: err}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r CustomerRepo) ExistsEmail(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM customer WHERE email = ?`, email).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

// UpdateProfile overwrites profile fields; email stays untouched (unique key).
func (r CustomerRepo) UpdateProfile(id int64, c models.Customer) error {
	_, err := r.db().Exec(`
		UPDATE customer
		SET full_name = ?, address = ?, phone = ?, id_type = ?, id_number = ?, gender = ?, country = ?
		WHERE customer_id = ?
	`, c.FullName, intdb.NullIfEmpty(c.Address), intdb.NullIfEmpty(c.Phone),
		intdb.NullIfEmpty(c.IDType), intdb.NullIfEmpty(c.IDNumber),
		intdb.NullIfEmpty(c.Gender), intdb.NullIfEmpty(c.Country), id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r CustomerRepo) GetPasswordHash(id int64) (string, error) {
	var hash string
	err := r.db().QueryRow(`SELECT password FROM customer WHERE customer_id = ?`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFoundError{Resource: "customer"}
		}
		return "", domain.InternalError{Err: err}
	}
	return hash, nil
}

func (r CustomerRepo) UpdatePassword(id int64, passwordHash string) error {
	if _, err := r.db().Exec(`UPDATE customer SET password = ? WHERE customer_id = ?`, passwordHash, id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
