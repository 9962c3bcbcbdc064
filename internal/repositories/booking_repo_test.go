package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"travel-backend/internal/domain/models"
)

func TestInsertPackageBookingWritesModelStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO booking").
		WithArgs(int64(9), int64(3), "2025-06-01", 10000.0, 2, models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(12, 1))

	b := models.Booking{
		CustomerID:  9,
		PackageID:   3,
		TravelDate:  "2025-06-01",
		TotalAmount: 10000,
		SeatsBooked: 2,
		Status:      models.BookingStatusPending,
	}
	id, err := BookingRepo{DB: db}.InsertPackageBooking(b)
	if err != nil {
		t.Fatalf("InsertPackageBooking returned error: %v", err)
	}
	if id != 12 {
		t.Fatalf("id = %d, want 12", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHotelInsertWritesModelStatuses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO hotel_booking").
		WithArgs(int64(9), int64(4), "2025-03-10", "2025-03-13", 2, 6000.0,
			models.BookingStatusPending, "unpaid").
		WillReturnResult(sqlmock.NewResult(21, 1))

	b := models.HotelBooking{
		CustomerID:    9,
		HotelID:       4,
		CheckInDate:   "2025-03-10",
		CheckOutDate:  "2025-03-13",
		NumberOfRooms: 2,
		TotalAmount:   6000,
		Status:        models.BookingStatusPending,
		PaymentStatus: "unpaid",
	}
	id, err := HotelBookingRepo{DB: db}.Insert(b)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 21 {
		t.Fatalf("id = %d, want 21", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
