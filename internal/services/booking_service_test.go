package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
)

func vehicleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"bus_id", "agent_id", "bus_number", "bus_type",
		"total_seats", "available_seats", "source", "destination",
		"departure_time", "arrival_time", "fare_per_seat", "status",
		"created_at", "name", "phone", "commission_rate",
	})
}

func packageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"package_id", "agent_id", "title", "description",
		"destination", "start_location", "price", "duration_days",
		"includes", "excludes", "image_url", "status",
		"created_at", "name", "phone", "commission_rate",
	})
}

func hotelRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"hotel_id", "name", "location", "description",
		"price_per_night", "rating", "available_rooms",
		"amenities", "image_url", "status", "created_at",
	})
}

func ownedBookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"booking_id", "customer_id", "package_id", "bus_id",
		"travel_date", "seats_booked", "total_amount", "status", "created_at",
	})
}

func TestBookVehicleCommitsDecrementAndInsertTogether(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM vehicle").WithArgs(int64(7)).
		WillReturnRows(vehicleRows().AddRow(
			7, 2, "BUS-01", "executive", 40, 5, "Jakarta", "Bandung",
			"2025-06-01 08:00:00", "2025-06-01 12:00:00", 150000.0, "active",
			"2025-01-01 00:00:00", "Agen Satu", "0800", 10.0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicle").WithArgs(2, int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking").
		WithArgs(int64(9), int64(7), "2025-06-01", 300000.0, 2, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectCommit()

	svc := BookingService{DB: db}
	b, err := svc.BookVehicle(9, VehicleBookingInput{BusID: 7, TravelDate: "2025-06-01", SeatsBooked: 2})
	if err != nil {
		t.Fatalf("BookVehicle returned error: %v", err)
	}
	if b.BookingID != 31 {
		t.Fatalf("booking id = %d, want 31", b.BookingID)
	}
	if b.Status != models.BookingStatusPending {
		t.Fatalf("status = %q, want pending", b.Status)
	}
	if b.TotalAmount != 300000 {
		t.Fatalf("total = %v, want 300000", b.TotalAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookVehicleRollsBackWhenSeatsRaceAway(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// the read still shows enough seats, but a concurrent booking wins
	// the conditional UPDATE first
	mock.ExpectQuery("FROM vehicle").WithArgs(int64(7)).
		WillReturnRows(vehicleRows().AddRow(
			7, 2, "BUS-01", "executive", 40, 2, "Jakarta", "Bandung",
			"2025-06-01 08:00:00", "2025-06-01 12:00:00", 150000.0, "active",
			"2025-01-01 00:00:00", "Agen Satu", "0800", 10.0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vehicle").WithArgs(2, int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	svc := BookingService{DB: db}
	_, err = svc.BookVehicle(9, VehicleBookingInput{BusID: 7, TravelDate: "2025-06-01", SeatsBooked: 2})
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookVehicleRejectsObviouslyInsufficientSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM vehicle").WithArgs(int64(7)).
		WillReturnRows(vehicleRows().AddRow(
			7, 2, "BUS-01", "executive", 40, 1, "Jakarta", "Bandung",
			"2025-06-01 08:00:00", "2025-06-01 12:00:00", 150000.0, "active",
			"2025-01-01 00:00:00", "Agen Satu", "0800", 10.0))

	svc := BookingService{DB: db}
	_, err = svc.BookVehicle(9, VehicleBookingInput{BusID: 7, TravelDate: "2025-06-01", SeatsBooked: 3})
	if !domain.IsCapacity(err) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookPackageDefaultsAndTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM package").WithArgs(int64(3)).
		WillReturnRows(packageRows().AddRow(
			3, 2, "Bromo Sunrise", "", "Bromo", "Surabaya", 5000.0, 3,
			"", "", "", "available", "2025-01-01 00:00:00", "Agen Satu", "0800", 10.0))
	mock.ExpectExec("INSERT INTO booking").
		WithArgs(int64(9), int64(3), sqlmock.AnyArg(), 10000.0, 2, models.BookingStatusConfirmed).
		WillReturnResult(sqlmock.NewResult(12, 1))

	svc := BookingService{DB: db}
	b, err := svc.BookPackage(9, PackageBookingInput{PackageID: 3, SeatsBooked: 2})
	if err != nil {
		t.Fatalf("BookPackage returned error: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", b.Status)
	}
	if b.TotalAmount != 10000 {
		t.Fatalf("total = %v, want 10000", b.TotalAmount)
	}
	if b.TravelDate == "" {
		t.Fatalf("travel_date should default to today")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookPackageUnknownPackage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM package").WithArgs(int64(99)).
		WillReturnRows(packageRows())

	svc := BookingService{DB: db}
	_, err = svc.BookPackage(9, PackageBookingInput{PackageID: 99})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookHotelComputesNightsAndTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM hotel").WithArgs(int64(4)).
		WillReturnRows(hotelRows().AddRow(
			4, "Hotel Merdeka", "Bandung", "", 1000.0, 4.5, 20,
			"", "", "active", "2025-01-01 00:00:00"))
	mock.ExpectExec("INSERT INTO hotel_booking").
		WithArgs(int64(9), int64(4), "2025-03-10", "2025-03-13", 2, 6000.0,
			models.BookingStatusConfirmed, "paid").
		WillReturnResult(sqlmock.NewResult(21, 1))

	svc := BookingService{DB: db}
	b, err := svc.BookHotel(9, HotelBookingInput{
		HotelID:      4,
		CheckinDate:  "2025-03-10",
		CheckoutDate: "2025-03-13",
		NumRooms:     2,
	})
	if err != nil {
		t.Fatalf("BookHotel returned error: %v", err)
	}
	if b.Nights != 3 {
		t.Fatalf("nights = %d, want 3", b.Nights)
	}
	if b.TotalAmount != 6000 {
		t.Fatalf("total = %v, want 6000", b.TotalAmount)
	}
	if b.PaymentStatus != "paid" {
		t.Fatalf("payment_status = %q, want paid", b.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookHotelRejectsCheckoutBeforeCheckin(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := BookingService{DB: db}
	for _, checkout := range []string{"2025-03-10", "2025-03-09"} {
		_, err := svc.BookHotel(9, HotelBookingInput{
			HotelID:      4,
			CheckinDate:  "2025-03-10",
			CheckoutDate: checkout,
			NumRooms:     1,
		})
		if !domain.IsValidation(err) {
			t.Fatalf("checkout %s: expected validation error, got %v", checkout, err)
		}
	}
}

func TestCancelBookingTerminalStates(t *testing.T) {
	cases := []struct {
		status string
	}{
		{models.BookingStatusCancelled},
		{models.BookingStatusCompleted},
	}
	for _, tc := range cases {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock init error: %v", err)
		}

		mock.ExpectQuery("FROM booking").WithArgs(int64(5), int64(9)).
			WillReturnRows(ownedBookingRows().AddRow(
				5, 9, 0, 7, "2025-06-01", 2, 300000.0, tc.status, "2025-01-01 00:00:00"))

		svc := BookingService{DB: db}
		if err := svc.CancelBooking(9, 5); !domain.IsState(err) {
			t.Fatalf("status %s: expected state error, got %v", tc.status, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("status %s: unmet expectations: %v", tc.status, err)
		}
		db.Close()
	}
}

func TestCancelBookingLeavesSeatsAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking").WithArgs(int64(5), int64(9)).
		WillReturnRows(ownedBookingRows().AddRow(
			5, 9, 0, 7, "2025-06-01", 2, 300000.0, models.BookingStatusPending, "2025-01-01 00:00:00"))
	// only the status flips; no UPDATE vehicle is issued
	mock.ExpectExec("UPDATE booking SET status").
		WithArgs(models.BookingStatusCancelled, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := BookingService{DB: db}
	if err := svc.CancelBooking(9, 5); err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingNotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking").WithArgs(int64(5), int64(9)).
		WillReturnRows(ownedBookingRows())

	svc := BookingService{DB: db}
	if err := svc.CancelBooking(9, 5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
