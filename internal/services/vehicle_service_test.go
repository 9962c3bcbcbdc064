package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"travel-backend/internal/domain"
)

func validVehicleInput() VehicleInput {
	return VehicleInput{
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

func TestCreateVehicleDuplicateBusNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT bus_id FROM vehicle WHERE bus_number").WithArgs("BUS-01").
		WillReturnRows(sqlmock.NewRows([]string{"bus_id"}).AddRow(3))

	svc := VehicleService{DB: db}
	_, err = svc.Create(2, validVehicleInput())
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateVehicleInitializesAvailableSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT bus_id FROM vehicle WHERE bus_number").WithArgs("BUS-01").
		WillReturnRows(sqlmock.NewRows([]string{"bus_id"}))
	mock.ExpectExec("INSERT INTO vehicle").
		WithArgs(int64(2), "BUS-01", "executive", 40, 40,
			"Jakarta", "Bandung", "2025-06-01 08:00:00", "2025-06-01 12:00:00", 150000.0).
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := VehicleService{DB: db}
	v, err := svc.Create(2, validVehicleInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.AvailableSeats != 40 {
		t.Fatalf("available_seats = %d, want 40", v.AvailableSeats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteVehicleBlockedByConfirmedBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT bus_id FROM vehicle WHERE bus_id").WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"bus_id"}).AddRow(7))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM booking").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	svc := VehicleService{DB: db}
	if err := svc.Delete(2, 7); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteVehicleNotOwnedLooksAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT bus_id FROM vehicle WHERE bus_id").WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"bus_id"}))

	svc := VehicleService{DB: db}
	if err := svc.Delete(2, 7); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateVehicleValidatesSeatBounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT bus_id FROM vehicle WHERE bus_id").WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"bus_id"}).AddRow(7))

	in := validVehicleInput()
	in.AvailableSeats = 50 // above total_seats

	svc := VehicleService{DB: db}
	if _, err := svc.Update(2, 7, in); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
