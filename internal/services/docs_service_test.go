package services

import (
	"strings"
	"testing"

	"travel-backend/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{
		BookingLoader: func(bookingID, customerID int64) (models.Booking, error) {
			return models.Booking{
				BookingID:          bookingID,
				CustomerID:         customerID,
				BusID:              7,
				TravelDate:         "2025-06-01",
				SeatsBooked:        2,
				TotalAmount:        300000,
				Status:             models.BookingStatusPending,
				BusNumber:          "BUS-01",
				Source:             "Jakarta",
				VehicleDestination: "Bandung",
				CustomerName:       "Tini",
			}, nil
		},
		HotelLoader: func(bookingID, customerID int64) (models.HotelBooking, error) {
			return models.HotelBooking{
				BookingID:     bookingID,
				CustomerID:    customerID,
				HotelID:       4,
				CheckInDate:   "2025-03-10",
				CheckOutDate:  "2025-03-13",
				NumberOfRooms: 2,
				Nights:        3,
				TotalAmount:   6000,
				Status:        models.BookingStatusConfirmed,
				PaymentStatus: "paid",
				HotelName:     "Hotel Merdeka",
				Location:      "Bandung",
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateBookingReceipt(5, 9)
	if err != nil {
		t.Fatalf("GenerateBookingReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateBookingReceipt returned empty data")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}

	invoice, invName, err := svc.GenerateHotelInvoice(5, 9)
	if err != nil {
		t.Fatalf("GenerateHotelInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName == "" {
		t.Fatalf("GenerateHotelInvoice returned empty data")
	}
}
