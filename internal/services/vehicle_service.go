package services

import (
	"database/sql"
	"strings"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"
)

// VehicleService is the agent-facing side of the vehicle catalogue.
type VehicleService struct {
	DB        *sql.DB
	RequestID string
}

func (s VehicleService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s VehicleService) vehicles() repositories.VehicleRepo {
	return repositories.VehicleRepo{DB: s.db()}
}

type VehicleInput struct {
	BusNumber      string  `json:"bus_number"`
	BusType        string  `json:"bus_type"`
	TotalSeats     int     `json:"total_seats"`
	AvailableSeats int     `json:"available_seats"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	FarePerSeat    float64 `json:"fare_per_seat"`
	Status         string  `json:"status"`
}

func (in VehicleInput) validate() error {
	if strings.TrimSpace(in.BusNumber) == "" {
		return domain.ValidationError{Field: "bus_number", Msg: "wajib diisi"}
	}
	if in.TotalSeats <= 0 {
		return domain.ValidationError{Field: "total_seats", Msg: "minimal 1"}
	}
	if strings.TrimSpace(in.Source) == "" || strings.TrimSpace(in.Destination) == "" {
		return domain.ValidationError{Msg: "source dan destination wajib diisi"}
	}
	if in.FarePerSeat <= 0 {
		return domain.ValidationError{Field: "fare_per_seat", Msg: "harus lebih dari 0"}
	}
	return nil
}

func (s VehicleService) ListMine(agentID int64) ([]models.Vehicle, error) {
	return s.vehicles().ListByAgent(agentID)
}

// Create pre-checks the bus number before inserting; the unique index
// still backstops a race between the check and the INSERT.
func (s VehicleService) Create(agentID int64, in VehicleInput) (models.Vehicle, error) {
	if err := in.validate(); err != nil {
		return models.Vehicle{}, err
	}

	busNumber := strings.TrimSpace(in.BusNumber)
	exists, err := s.vehicles().ExistsBusNumber(busNumber)
	if err != nil {
		return models.Vehicle{}, err
	}
	if exists {
		return models.Vehicle{}, domain.ConflictError{Resource: "nomor bus", Msg: "nomor bus sudah terdaftar"}
	}

	v := models.Vehicle{
		AgentID:        agentID,
		BusNumber:      busNumber,
		BusType:        in.BusType,
		TotalSeats:     in.TotalSeats,
		AvailableSeats: in.TotalSeats,
		Source:         strings.TrimSpace(in.Source),
		Destination:    strings.TrimSpace(in.Destination),
		DepartureTime:  in.DepartureTime,
		ArrivalTime:    in.ArrivalTime,
		FarePerSeat:    in.FarePerSeat,
		Status:         "active",
	}
	id, err := s.vehicles().Create(v)
	if err != nil {
		return models.Vehicle{}, err
	}
	v.BusID = id

	utils.LogEvent(s.RequestID, "vehicle", "create", "bus_id="+itoa(id)+" agent_id="+itoa(agentID))
	return v, nil
}

// Update overwrites the whole row, available_seats included.
func (s VehicleService) Update(agentID, busID int64, in VehicleInput) (models.Vehicle, error) {
	owned, err := s.vehicles().OwnedByAgent(busID, agentID)
	if err != nil {
		return models.Vehicle{}, err
	}
	if !owned {
		return models.Vehicle{}, domain.NotFoundError{Resource: "kendaraan"}
	}
	if err := in.validate(); err != nil {
		return models.Vehicle{}, err
	}
	if in.AvailableSeats < 0 || in.AvailableSeats > in.TotalSeats {
		return models.Vehicle{}, domain.ValidationError{Field: "available_seats", Msg: "harus antara 0 dan total_seats"}
	}
	status := in.Status
	if status == "" {
		status = "active"
	}

	v := models.Vehicle{
		BusID:          busID,
		AgentID:        agentID,
		BusNumber:      strings.TrimSpace(in.BusNumber),
		BusType:        in.BusType,
		TotalSeats:     in.TotalSeats,
		AvailableSeats: in.AvailableSeats,
		Source:         strings.TrimSpace(in.Source),
		Destination:    strings.TrimSpace(in.Destination),
		DepartureTime:  in.DepartureTime,
		ArrivalTime:    in.ArrivalTime,
		FarePerSeat:    in.FarePerSeat,
		Status:         status,
	}
	if err := s.vehicles().Update(busID, agentID, v); err != nil {
		return models.Vehicle{}, err
	}

	utils.LogEvent(s.RequestID, "vehicle", "update", "bus_id="+itoa(busID))
	return v, nil
}

// Delete refuses while a confirmed booking still references the vehicle.
func (s VehicleService) Delete(agentID, busID int64) error {
	owned, err := s.vehicles().OwnedByAgent(busID, agentID)
	if err != nil {
		return err
	}
	if !owned {
		return domain.NotFoundError{Resource: "kendaraan"}
	}
	has, err := s.vehicles().HasConfirmedBookings(busID)
	if err != nil {
		return err
	}
	if has {
		return domain.ConflictError{Resource: "kendaraan", Msg: "kendaraan masih memiliki booking terkonfirmasi"}
	}
	if err := s.vehicles().Delete(busID, agentID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vehicle", "delete", "bus_id="+itoa(busID))
	return nil
}
