package repositories

import (
	"database/sql"
	"errors"

	intconfig "travel-backend/internal/config"
	intdb "travel-backend/internal/db"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

// BookingRepo covers the shared package/vehicle booking ledger.
type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// InsertPackageBooking writes a package booking. Packages carry no
// capacity counter, so there is nothing to decrement. The status written
// is whatever the caller set on the model.
func (r BookingRepo) InsertPackageBooking(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO booking (customer_id, package_id, travel_date, total_amount, seats_booked, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.CustomerID, b.PackageID, b.TravelDate, b.TotalAmount, b.SeatsBooked, b.Status)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// InsertVehicleBookingTx writes a vehicle booking inside the same
// transaction as the seat decrement, so both commit or roll back together.
func (r BookingRepo) InsertVehicleBookingTx(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO booking (customer_id, bus_id, travel_date, total_amount, seats_booked, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.CustomerID, b.BusID, b.TravelDate, b.TotalAmount, b.SeatsBooked, b.Status)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// GetOwnedByID fetches a booking scoped to the owning customer. Bookings
// of other customers are indistinguishable from absent ones.
func (r BookingRepo) GetOwnedByID(bookingID, customerID int64) (models.Booking, error) {
	var b models.Booking
	var packageID, busID sql.NullInt64
	err := r.db().QueryRow(`
		SELECT booking_id, customer_id, package_id, bus_id,
		       COALESCE(DATE_FORMAT(travel_date, '%Y-%m-%d'), ''),
		       COALESCE(seats_booked, 1), total_amount, status,
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM booking
		WHERE booking_id = ? AND customer_id = ?
	`, bookingID, customerID).Scan(
		&b.BookingID, &b.CustomerID, &packageID, &busID,
		&b.TravelDate, &b.SeatsBooked, &b.TotalAmount, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	b.PackageID = packageID.Int64
	b.BusID = busID.Int64
	return b, nil
}

// GetOwnedDetail adds package/vehicle columns for detail views and receipts.
func (r BookingRepo) GetOwnedDetail(bookingID, customerID int64) (models.Booking, error) {
	b, err := r.GetOwnedByID(bookingID, customerID)
	if err != nil {
		return models.Booking{}, err
	}

	_ = r.db().QueryRow(`SELECT full_name FROM customer WHERE customer_id = ?`, customerID).
		Scan(&b.CustomerName)
	if b.PackageID > 0 {
		_ = r.db().QueryRow(`
			SELECT title, destination, COALESCE(start_location,''), duration_days
			FROM package WHERE package_id = ?
		`, b.PackageID).Scan(&b.PackageTitle, &b.PackageDestination, &b.StartLocation, &b.DurationDays)
	}
	if b.BusID > 0 {
		_ = r.db().QueryRow(`
			SELECT bus_number, bus_type, source, destination
			FROM vehicle WHERE bus_id = ?
		`, b.BusID).Scan(&b.BusNumber, &b.BusType, &b.Source, &b.VehicleDestination)
	}
	return b, nil
}

// ListPackageBookingsByCustomer backs GET /api/packages/bookings/my.
func (r BookingRepo) ListPackageBookingsByCustomer(customerID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT b.booking_id, b.customer_id, b.package_id,
		       COALESCE(DATE_FORMAT(b.travel_date, '%Y-%m-%d'), ''),
		       COALESCE(b.seats_booked, 1), b.total_amount, b.status,
		       COALESCE(DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s'), ''),
		       p.title, p.destination, p.duration_days
		FROM booking b
		JOIN package p ON b.package_id = p.package_id
		WHERE b.customer_id = ?
		ORDER BY b.created_at DESC
	`, customerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.BookingID, &b.CustomerID, &b.PackageID,
			&b.TravelDate, &b.SeatsBooked, &b.TotalAmount, &b.Status, &b.CreatedAt,
			&b.PackageTitle, &b.PackageDestination, &b.DurationDays); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// ListAllByCustomer joins both item kinds; the legacy payment table is
// only joined when it exists in the schema.
func (r BookingRepo) ListAllByCustomer(customerID int64) ([]models.Booking, error) {
	db := r.db()
	withPayment := intdb.HasTable(db, "payment") &&
		intdb.HasColumn(db, "payment", "payment_status") &&
		intdb.HasColumn(db, "payment", "payment_method")

	query := `
		SELECT b.booking_id, b.customer_id,
		       COALESCE(b.package_id, 0), COALESCE(b.bus_id, 0),
		       COALESCE(DATE_FORMAT(b.travel_date, '%Y-%m-%d'), ''),
		       COALESCE(b.seats_booked, 1), b.total_amount, b.status,
		       COALESCE(DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s'), ''),
		       COALESCE(p.title, ''), COALESCE(p.destination, ''), COALESCE(p.start_location, ''),
		       COALESCE(v.bus_number, ''), COALESCE(v.bus_type, ''), COALESCE(v.source, ''), COALESCE(v.destination, '')`
	if withPayment {
		query += `,
		       COALESCE(pay.payment_status, ''), COALESCE(pay.payment_method, '')`
	}
	query += `
		FROM booking b
		LEFT JOIN package p ON b.package_id = p.package_id
		LEFT JOIN vehicle v ON b.bus_id = v.bus_id`
	if withPayment {
		query += `
		LEFT JOIN payment pay ON b.booking_id = pay.booking_id`
	}
	query += `
		WHERE b.customer_id = ?
		ORDER BY b.created_at DESC`

	rows, err := db.Query(query, customerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		dest := []any{&b.BookingID, &b.CustomerID, &b.PackageID, &b.BusID,
			&b.TravelDate, &b.SeatsBooked, &b.TotalAmount, &b.Status, &b.CreatedAt,
			&b.PackageTitle, &b.PackageDestination, &b.StartLocation,
			&b.BusNumber, &b.BusType, &b.Source, &b.VehicleDestination}
		if withPayment {
			dest = append(dest, &b.PaymentStatus, &b.PaymentMethod)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r BookingRepo) UpdateStatus(bookingID int64, status string) error {
	if _, err := r.db().Exec(`UPDATE booking SET status = ? WHERE booking_id = ?`, status, bookingID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
