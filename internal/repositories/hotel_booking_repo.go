package repositories

import (
	"database/sql"
	"errors"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

type HotelBookingRepo struct {
	DB *sql.DB
}

func (r HotelBookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert writes the booking with the status and payment_status the caller
// set on the model. There is no payment gateway; payment_status is a
// synchronous stub field.
func (r HotelBookingRepo) Insert(b models.HotelBooking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO hotel_booking (customer_id, hotel_id, check_in_date, check_out_date,
		                           number_of_rooms, total_amount, status, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.CustomerID, b.HotelID, b.CheckInDate, b.CheckOutDate,
		b.NumberOfRooms, b.TotalAmount, b.Status, b.PaymentStatus)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r HotelBookingRepo) GetOwnedByID(bookingID, customerID int64) (models.HotelBooking, error) {
	var b models.HotelBooking
	err := r.db().QueryRow(`
		SELECT booking_id, customer_id, hotel_id,
		       COALESCE(DATE_FORMAT(check_in_date, '%Y-%m-%d'), ''),
		       COALESCE(DATE_FORMAT(check_out_date, '%Y-%m-%d'), ''),
		       number_of_rooms, total_amount, status, COALESCE(payment_status,''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM hotel_booking
		WHERE booking_id = ? AND customer_id = ?
	`, bookingID, customerID).Scan(
		&b.BookingID, &b.CustomerID, &b.HotelID,
		&b.CheckInDate, &b.CheckOutDate,
		&b.NumberOfRooms, &b.TotalAmount, &b.Status, &b.PaymentStatus, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HotelBooking{}, domain.NotFoundError{Resource: "booking hotel"}
		}
		return models.HotelBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// GetOwnedDetail adds hotel columns and the night count for detail views.
func (r HotelBookingRepo) GetOwnedDetail(bookingID, customerID int64) (models.HotelBooking, error) {
	var b models.HotelBooking
	err := r.db().QueryRow(`
		SELECT hb.booking_id, hb.customer_id, hb.hotel_id,
		       COALESCE(DATE_FORMAT(hb.check_in_date, '%Y-%m-%d'), ''),
		       COALESCE(DATE_FORMAT(hb.check_out_date, '%Y-%m-%d'), ''),
		       hb.number_of_rooms, hb.total_amount, hb.status, COALESCE(hb.payment_status,''),
		       COALESCE(DATE_FORMAT(hb.created_at, '%Y-%m-%d %H:%i:%s'), ''),
		       h.name, h.location, COALESCE(h.description,''), COALESCE(h.rating,0),
		       COALESCE(h.amenities,''), h.price_per_night,
		       DATEDIFF(hb.check_out_date, hb.check_in_date)
		FROM hotel_booking hb
		JOIN hotel h ON hb.hotel_id = h.hotel_id
		WHERE hb.booking_id = ? AND hb.customer_id = ?
	`, bookingID, customerID).Scan(
		&b.BookingID, &b.CustomerID, &b.HotelID,
		&b.CheckInDate, &b.CheckOutDate,
		&b.NumberOfRooms, &b.TotalAmount, &b.Status, &b.PaymentStatus, &b.CreatedAt,
		&b.HotelName, &b.Location, &b.Description, &b.Rating,
		&b.Amenities, &b.PricePerNight,
		&b.Nights,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HotelBooking{}, domain.NotFoundError{Resource: "booking hotel"}
		}
		return models.HotelBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r HotelBookingRepo) ListByCustomer(customerID int64) ([]models.HotelBooking, error) {
	rows, err := r.db().Query(`
		SELECT hb.booking_id, hb.customer_id, hb.hotel_id,
		       COALESCE(DATE_FORMAT(hb.check_in_date, '%Y-%m-%d'), ''),
		       COALESCE(DATE_FORMAT(hb.check_out_date, '%Y-%m-%d'), ''),
		       hb.number_of_rooms, hb.total_amount, hb.status, COALESCE(hb.payment_status,''),
		       COALESCE(DATE_FORMAT(hb.created_at, '%Y-%m-%d %H:%i:%s'), ''),
		       h.name, h.location, COALESCE(h.rating,0), h.price_per_night,
		       DATEDIFF(hb.check_out_date, hb.check_in_date)
		FROM hotel_booking hb
		JOIN hotel h ON hb.hotel_id = h.hotel_id
		WHERE hb.customer_id = ?
		ORDER BY hb.created_at DESC
	`, customerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.HotelBooking{}
	for rows.Next() {
		var b models.HotelBooking
		if err := rows.Scan(&b.BookingID, &b.CustomerID, &b.HotelID,
			&b.CheckInDate, &b.CheckOutDate,
			&b.NumberOfRooms, &b.TotalAmount, &b.Status, &b.PaymentStatus, &b.CreatedAt,
			&b.HotelName, &b.Location, &b.Rating, &b.PricePerNight,
			&b.Nights); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r HotelBookingRepo) UpdateStatus(bookingID int64, status string) error {
	if _, err := r.db().Exec(`UPDATE hotel_booking SET status = ? WHERE booking_id = ?`, status, bookingID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
