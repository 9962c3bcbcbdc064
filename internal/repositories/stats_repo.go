package repositories

import (
	"database/sql"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

// StatsRepo aggregates dashboard numbers for admins and agents.
type StatsRepo struct {
	DB *sql.DB
}

func (r StatsRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type AdminStats struct {
	Agents   int     `json:"agents"`
	Packages int     `json:"packages"`
	Vehicles int     `json:"vehicles"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type AgentStats struct {
	Packages   int     `json:"packages"`
	Vehicles   int     `json:"vehicles"`
	Bookings   int     `json:"bookings"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
}

// AdminDashboard counts everything under the admin's agents; revenue only
// counts confirmed bookings.
func (r StatsRepo) AdminDashboard(adminID int64) (AdminStats, error) {
	db := r.db()
	var s AdminStats

	if err := db.QueryRow(`SELECT COUNT(*) FROM agent WHERE admin_id = ?`, adminID).Scan(&s.Agents); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM package p JOIN agent a ON p.agent_id = a.agent_id WHERE a.admin_id = ?
	`, adminID).Scan(&s.Packages); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM vehicle v JOIN agent a ON v.agent_id = a.agent_id WHERE a.admin_id = ?
	`, adminID).Scan(&s.Vehicles); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM booking b
		LEFT JOIN package p ON b.package_id = p.package_id
		LEFT JOIN vehicle v ON b.bus_id = v.bus_id
		LEFT JOIN agent a ON (p.agent_id = a.agent_id OR v.agent_id = a.agent_id)
		WHERE a.admin_id = ?
	`, adminID).Scan(&s.Bookings); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`
		SELECT COALESCE(SUM(b.total_amount), 0) FROM booking b
		LEFT JOIN package p ON b.package_id = p.package_id
		LEFT JOIN vehicle v ON b.bus_id = v.bus_id
		LEFT JOIN agent a ON (p.agent_id = a.agent_id OR v.agent_id = a.agent_id)
		WHERE a.admin_id = ? AND b.status = 'confirmed'
	`, adminID).Scan(&s.Revenue); err != nil {
		return s, domain.InternalError{Err: err}
	}

	return s, nil
}

// AgentDashboard aggregates the agent's own inventory and revenue;
// commission is derived from the agent's commission_rate.
func (r StatsRepo) AgentDashboard(agentID int64, commissionRate float64) (AgentStats, error) {
	db := r.db()
	var s AgentStats

	if err := db.QueryRow(`SELECT COUNT(*) FROM package WHERE agent_id = ?`, agentID).Scan(&s.Packages); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM vehicle WHERE agent_id = ?`, agentID).Scan(&s.Vehicles); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM booking b
		LEFT JOIN package p ON b.package_id = p.package_id
		LEFT JOIN vehicle v ON b.bus_id = v.bus_id
		WHERE p.agent_id = ? OR v.agent_id = ?
	`, agentID, agentID).Scan(&s.Bookings); err != nil {
		return s, domain.InternalError{Err: err}
	}
	if err := db.QueryRow(`
		SELECT COALESCE(SUM(b.total_amount), 0) FROM booking b
		LEFT JOIN package p ON b.package_id = p.package_id
		LEFT JOIN vehicle v ON b.bus_id = v.bus_id
		WHERE (p.agent_id = ? OR v.agent_id = ?) AND b.status = 'confirmed'
	`, agentID, agentID).Scan(&s.Revenue); err != nil {
		return s, domain.InternalError{Err: err}
	}
	s.Commission = s.Revenue * commissionRate / 100

	return s, nil
}

// RecentBookingsByAgent returns the ten newest bookings touching the
// agent's packages or vehicles.
func (r StatsRepo) RecentBookingsByAgent(agentID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT b.booking_id,
		       COALESCE(DATE_FORMAT(b.travel_date, '%Y-%m-%d'), ''),
		       b.total_amount, b.status,
		       COALESCE(c.full_name, ''),
		       COALESCE(p.title, ''), COALESCE(p.destination, ''),
		       COALESCE(v.bus_number, ''), COALESCE(v.source, ''), COALESCE(v.destination, '')
		FROM booking b
		LEFT JOIN customer c ON b.customer_id = c.customer_id
		LEFT JOIN package p ON b.package_id = p.package_id
		LEFT JOIN vehicle v ON b.bus_id = v.bus_id
		WHERE p.agent_id = ? OR v.agent_id = ?
		ORDER BY b.created_at DESC
		LIMIT 10
	`, agentID, agentID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.BookingID, &b.TravelDate, &b.TotalAmount, &b.Status,
			&b.CustomerName,
			&b.PackageTitle, &b.PackageDestination,
			&b.BusNumber, &b.Source, &b.VehicleDestination); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}
