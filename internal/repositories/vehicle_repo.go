package repositories

import (
	"database/sql"
	"errors"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type VehicleRepo struct {
	DB *sql.DB
}

func (r VehicleRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type VehicleFilter struct {
	Source        string
	Destination   string
	BusType       string
	DepartureDate string
}

const vehicleSelect = `
	SELECT
		v.bus_id, v.agent_id, v.bus_number, v.bus_type,
		v.total_seats, v.available_seats, v.source, v.destination,
		COALESCE(DATE_FORMAT(v.departure_time, '%Y-%m-%d %H:%i:%s'), ''),
		COALESCE(DATE_FORMAT(v.arrival_time, '%Y-%m-%d %H:%i:%s'), ''),
		v.fare_per_seat, v.status,
		COALESCE(DATE_FORMAT(v.created_at, '%Y-%m-%d %H:%i:%s'), ''),
		a.name, COALESCE(a.phone,''), a.commission_rate
	FROM vehicle v
	JOIN agent a ON v.agent_id = a.agent_id
`

func scanVehicle(row interface{ Scan(...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.BusID, &v.AgentID, &v.BusNumber, &v.BusType,
		&v.TotalSeats, &v.AvailableSeats, &v.Source, &v.Destination,
		&v.DepartureTime, &v.ArrivalTime,
		&v.FarePerSeat, &v.Status,
		&v.CreatedAt,
		&v.AgentName, &v.AgentPhone, &v.CommissionRate,
	)
	return v, err
}

// List returns active vehicles of active agents, soonest departure first.
func (r VehicleRepo) List(f VehicleFilter) ([]models.Vehicle, error) {
	query := vehicleSelect + ` WHERE v.status = 'active' AND a.status = 'active'`
	args := []any{}

	if f.Source != "" {
		query += ` AND v.source LIKE ?`
		args = append(args, "%"+f.Source+"%")
	}
	if f.Destination != "" {
		query += ` AND v.destination LIKE ?`
		args = append(args, "%"+f.Destination+"%")
	}
	if f.BusType != "" {
		query += ` AND v.bus_type = ?`
		args = append(args, f.BusType)
	}
	if f.DepartureDate != "" {
		query += ` AND DATE(v.departure_time) = ?`
		args = append(args, f.DepartureDate)
	}

	query += ` ORDER BY v.departure_time ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

// GetActiveByID is the booking-path lookup.
func (r VehicleRepo) GetActiveByID(id int64) (models.Vehicle, error) {
	row := r.db().QueryRow(vehicleSelect+` WHERE v.bus_id = ? AND v.status = 'active'`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, domain.NotFoundError{Resource: "kendaraan"}
		}
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	return v, nil
}

func (r VehicleRepo) GetByID(id int64) (models.Vehicle, error) {
	row := r.db().QueryRow(vehicleSelect+` WHERE v.bus_id = ?`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, domain.NotFoundError{Resource: "kendaraan"}
		}
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	return v, nil
}

func (r VehicleRepo) ListByAgent(agentID int64) ([]models.Vehicle, error) {
	rows, err := r.db().Query(`
		SELECT bus_id, agent_id, bus_number, bus_type, total_seats, available_seats,
		       source, destination,
		       COALESCE(DATE_FORMAT(departure_time, '%Y-%m-%d %H:%i:%s'), ''),
		       COALESCE(DATE_FORMAT(arrival_time, '%Y-%m-%d %H:%i:%s'), ''),
		       fare_per_seat, status,
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM vehicle
		WHERE agent_id = ?
		ORDER BY created_at DESC
	`, agentID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.BusID, &v.AgentID, &v.BusNumber, &v.BusType, &v.TotalSeats, &v.AvailableSeats,
			&v.Source, &v.Destination, &v.DepartureTime, &v.ArrivalTime,
			&v.FarePerSeat, &v.Status, &v.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (r VehicleRepo) ExistsBusNumber(busNumber string) (bool, error) {
	var id int64
	err := r.db().QueryRow(`SELECT bus_id FROM vehicle WHERE bus_number = ?`, busNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// Create initializes available_seats to total_seats for a fresh vehicle.
func (r VehicleRepo) Create(v models.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicle (agent_id, bus_number, bus_type, total_seats, available_seats,
		                     source, destination, departure_time, arrival_time, fare_per_seat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, v.AgentID, v.BusNumber, v.BusType, v.TotalSeats, v.TotalSeats,
		v.Source, v.Destination, v.DepartureTime, v.ArrivalTime, v.FarePerSeat)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "nomor bus", Err: err}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// OwnedByAgent reports whether the vehicle belongs to the agent.
func (r VehicleRepo) OwnedByAgent(busID, agentID int64) (bool, error) {
	var id int64
	err := r.db().QueryRow(`SELECT bus_id FROM vehicle WHERE bus_id = ? AND agent_id = ?`, busID, agentID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// Update is a full owner-scoped overwrite. available_seats is written
// directly, so callers can detach the counter from real bookings.
func (r VehicleRepo) Update(busID, agentID int64, v models.Vehicle) error {
	_, err := r.db().Exec(`
		UPDATE vehicle
		SET bus_number = ?, bus_type = ?, total_seats = ?, available_seats = ?,
		    source = ?, destination = ?, departure_time = ?, arrival_time = ?,
		    fare_per_seat = ?, status = ?
		WHERE bus_id = ? AND agent_id = ?
	`, v.BusNumber, v.BusType, v.TotalSeats, v.AvailableSeats,
		v.Source, v.Destination, v.DepartureTime, v.ArrivalTime,
		v.FarePerSeat, v.Status, busID, agentID)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return domain.ConflictError{Resource: "nomor bus", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r VehicleRepo) Delete(busID, agentID int64) error {
	if _, err := r.db().Exec(`DELETE FROM vehicle WHERE bus_id = ? AND agent_id = ?`, busID, agentID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r VehicleRepo) HasConfirmedBookings(busID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM booking WHERE bus_id = ? AND status = 'confirmed'`, busID).Scan(&n)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

// ReserveSeats decrements the seat counter inside the caller's transaction.
// The WHERE guard makes check-and-decrement one atomic statement, so the
// counter can never go negative under concurrent bookings. Zero rows
// affected means not enough seats.
func (r VehicleRepo) ReserveSeats(tx *sql.Tx, busID int64, seats int) error {
	res, err := tx.Exec(`
		UPDATE vehicle
		SET available_seats = available_seats - ?
		WHERE bus_id = ? AND available_seats >= ?
	`, seats, busID, seats)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.CapacityError{Resource: "kursi"}
	}
	return nil
}
