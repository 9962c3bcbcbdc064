package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

func modelsVehicleFixture() models.Vehicle {
	return models.Vehicle{
		AgentID:       2,
		BusNumber:     "BUS-01",
		BusType:       "executive",
		TotalSeats:    40,
		Source:        "Jakarta",
		Destination:   "Bandung",
		DepartureTime: "2025-06-01 08:00:00",
		ArrivalTime:   "2025-06-01 12:00:00",
		FarePerSeat:   150000,
	}
}

func TestReserveSeatsDecrementsWhenEnough(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicle").WithArgs(3, int64(10), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := (VehicleRepo{DB: db}).ReserveSeats(tx, 10, 3); err != nil {
		t.Fatalf("ReserveSeats returned error: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReserveSeatsZeroRowsMeansCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicle").WithArgs(3, int64(10), 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	err = (VehicleRepo{DB: db}).ReserveSeats(tx, 10, 3)
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateInitializesAvailableSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO vehicle").
		WithArgs(int64(2), "BUS-01", "executive", 40, 40,
			"Jakarta", "Bandung", "2025-06-01 08:00:00", "2025-06-01 12:00:00", 150000.0).
		WillReturnResult(sqlmock.NewResult(7, 1))

	v := modelsVehicleFixture()
	id, err := VehicleRepo{DB: db}.Create(v)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
