package repositories

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

type PackageRepo struct {
	DB *sql.DB
}

func (r PackageRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// PackageFilter narrows the public listing. Zero values mean "no filter".
type PackageFilter struct {
	Destination   string
	StartLocation string
	MinPrice      string
	MaxPrice      string
	Duration      string
}

const packageSelect = `
	SELECT
		p.package_id, p.agent_id, p.title, COALESCE(p.description,''),
		p.destination, COALESCE(p.start_location,''), p.price, p.duration_days,
		COALESCE(p.includes,''), COALESCE(p.excludes,''), COALESCE(p.image_url,''), p.status,
		COALESCE(DATE_FORMAT(p.created_at, '%Y-%m-%d %H:%i:%s'), ''),
		a.name, COALESCE(a.phone,''), a.commission_rate
	FROM package p
	JOIN agent a ON p.agent_id = a.agent_id
`

func scanPackage(row interface{ Scan(...any) error }) (models.TourPackage, error) {
	var p models.TourPackage
	err := row.Scan(
		&p.PackageID, &p.AgentID, &p.Title, &p.Description,
		&p.Destination, &p.StartLocation, &p.Price, &p.DurationDays,
		&p.Includes, &p.Excludes, &p.ImageURL, &p.Status,
		&p.CreatedAt,
		&p.AgentName, &p.AgentPhone, &p.CommissionRate,
	)
	return p, err
}

// List returns available packages of active agents only.
func (r PackageRepo) List(f PackageFilter) ([]models.TourPackage, error) {
	query := packageSelect + ` WHERE p.status = 'available' AND a.status = 'active'`
	args := []any{}

	if f.Destination != "" {
		query += ` AND p.destination LIKE ?`
		args = append(args, "%"+f.Destination+"%")
	}
	if f.StartLocation != "" {
		query += ` AND p.start_location LIKE ?`
		args = append(args, "%"+f.StartLocation+"%")
	}
	if f.MinPrice != "" {
		if v, err := strconv.ParseFloat(f.MinPrice, 64); err == nil {
			query += ` AND p.price >= ?`
			args = append(args, v)
		}
	}
	if f.MaxPrice != "" {
		if v, err := strconv.ParseFloat(f.MaxPrice, 64); err == nil {
			query += ` AND p.price <= ?`
			args = append(args, v)
		}
	}
	if f.Duration != "" {
		if v, err := strconv.Atoi(strings.TrimSpace(f.Duration)); err == nil {
			query += ` AND p.duration_days = ?`
			args = append(args, v)
		}
	}

	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TourPackage{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// GetAvailableByID is the booking-path lookup: only status=available counts.
func (r PackageRepo) GetAvailableByID(id int64) (models.TourPackage, error) {
	row := r.db().QueryRow(packageSelect+` WHERE p.package_id = ? AND p.status = 'available'`, id)
	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TourPackage{}, domain.NotFoundError{Resource: "paket"}
		}
		return models.TourPackage{}, domain.InternalError{Err: err}
	}
	return p, nil
}
