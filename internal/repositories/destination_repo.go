package repositories

import (
	"database/sql"
	"errors"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

// DestinationRepo serves read-only reference data. Related packages and
// hotels are matched by name LIKE, a best-effort join, not a foreign key.
type DestinationRepo struct {
	DB *sql.DB
}

func (r DestinationRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const destinationSelect = `
	SELECT destination_id, name, country, COALESCE(description,''),
	       COALESCE(popular_attractions,''), COALESCE(image_url,'')
	FROM destinations
`

func (r DestinationRepo) List(country, search string) ([]models.Destination, error) {
	query := destinationSelect + ` WHERE 1=1`
	args := []any{}

	if country != "" {
		query += ` AND country LIKE ?`
		args = append(args, "%"+country+"%")
	}
	if search != "" {
		query += ` AND (name LIKE ? OR description LIKE ? OR popular_attractions LIKE ?)`
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}

	query += ` ORDER BY name ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.DestinationID, &d.Name, &d.Country, &d.Description,
			&d.PopularAttractions, &d.ImageURL); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r DestinationRepo) GetByID(id int64) (models.Destination, error) {
	var d models.Destination
	err := r.db().QueryRow(destinationSelect+` WHERE destination_id = ?`, id).Scan(
		&d.DestinationID, &d.Name, &d.Country, &d.Description,
		&d.PopularAttractions, &d.ImageURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Destination{}, domain.NotFoundError{Resource: "destinasi"}
		}
		return models.Destination{}, domain.InternalError{Err: err}
	}
	return d, nil
}

// RelatedPackages lists up to five cheapest packages whose destination
// text contains the destination name.
func (r DestinationRepo) RelatedPackages(name string) ([]models.TourPackage, error) {
	rows, err := r.db().Query(`
		SELECT package_id, title, price, duration_days, COALESCE(image_url,'')
		FROM package
		WHERE destination LIKE ?
		ORDER BY price ASC
		LIMIT 5
	`, "%"+name+"%")
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TourPackage{}
	for rows.Next() {
		var p models.TourPackage
		if err := rows.Scan(&p.PackageID, &p.Title, &p.Price, &p.DurationDays, &p.ImageURL); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// RelatedHotels lists up to five best-rated hotels by location match.
func (r DestinationRepo) RelatedHotels(name string) ([]models.Hotel, error) {
	rows, err := r.db().Query(`
		SELECT hotel_id, name, price_per_night, COALESCE(rating,0), COALESCE(image_url,'')
		FROM hotel
		WHERE location LIKE ?
		ORDER BY rating DESC
		LIMIT 5
	`, "%"+name+"%")
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.HotelID, &h.Name, &h.PricePerNight, &h.Rating, &h.ImageURL); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// Popular ranks destinations by package booking volume through the same
// LIKE association.
func (r DestinationRepo) Popular() ([]models.Destination, error) {
	rows, err := r.db().Query(`
		SELECT d.destination_id, d.name, d.country, COALESCE(d.description,''),
		       COALESCE(d.popular_attractions,''), COALESCE(d.image_url,''),
		       COUNT(b.booking_id) AS total_bookings
		FROM destinations d
		LEFT JOIN package p ON d.name LIKE CONCAT('%', p.destination, '%')
		LEFT JOIN booking b ON p.package_id = b.package_id
		GROUP BY d.destination_id
		ORDER BY total_bookings DESC, d.name ASC
		LIMIT 10
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.DestinationID, &d.Name, &d.Country, &d.Description,
			&d.PopularAttractions, &d.ImageURL, &d.TotalBookings); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}
