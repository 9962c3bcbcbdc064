package repositories

import (
	"database/sql"
	"errors"
	"strconv"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

type HotelRepo struct {
	DB *sql.DB
}

func (r HotelRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type HotelFilter struct {
	Location  string
	MinPrice  string
	MaxPrice  string
	MinRating string
}

const hotelSelect = `
	SELECT hotel_id, name, location, COALESCE(description,''),
	       price_per_night, COALESCE(rating,0), COALESCE(available_rooms,0),
	       COALESCE(amenities,''), COALESCE(image_url,''), status,
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM hotel
`

func scanHotel(row interface{ Scan(...any) error }) (models.Hotel, error) {
	var h models.Hotel
	err := row.Scan(
		&h.HotelID, &h.Name, &h.Location, &h.Description,
		&h.PricePerNight, &h.Rating, &h.AvailableRooms,
		&h.Amenities, &h.ImageURL, &h.Status, &h.CreatedAt,
	)
	return h, err
}

func (r HotelRepo) List(f HotelFilter) ([]models.Hotel, error) {
	query := hotelSelect + ` WHERE status = 'active'`
	args := []any{}

	if f.Location != "" {
		query += ` AND location LIKE ?`
		args = append(args, "%"+f.Location+"%")
	}
	if f.MinPrice != "" {
		if v, err := strconv.ParseFloat(f.MinPrice, 64); err == nil {
			query += ` AND price_per_night >= ?`
			args = append(args, v)
		}
	}
	if f.MaxPrice != "" {
		if v, err := strconv.ParseFloat(f.MaxPrice, 64); err == nil {
			query += ` AND price_per_night <= ?`
			args = append(args, v)
		}
	}
	if f.MinRating != "" {
		if v, err := strconv.ParseFloat(f.MinRating, 64); err == nil {
			query += ` AND rating >= ?`
			args = append(args, v)
		}
	}

	query += ` ORDER BY rating DESC, created_at DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r HotelRepo) GetByID(id int64) (models.Hotel, error) {
	row := r.db().QueryRow(hotelSelect+` WHERE hotel_id = ?`, id)
	h, err := scanHotel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
		}
		return models.Hotel{}, domain.InternalError{Err: err}
	}
	return h, nil
}
