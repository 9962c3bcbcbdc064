package services

import (
	"database/sql"
	"strconv"
	"strings"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"
)

// BookingService turns purchase intents into ledger rows. The three item
// kinds keep their historical differences on purpose: packages confirm
// immediately and never check capacity, vehicles start pending and
// reserve seats atomically, hotels confirm with a stub paid status.
type BookingService struct {
	DB        *sql.DB
	RequestID string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepo {
	return repositories.BookingRepo{DB: s.db()}
}

func (s BookingService) hotelBookings() repositories.HotelBookingRepo {
	return repositories.HotelBookingRepo{DB: s.db()}
}

type PackageBookingInput struct {
	PackageID   int64  `json:"package_id"`
	TravelDate  string `json:"travel_date"`
	SeatsBooked int    `json:"seats_booked"`
}

type VehicleBookingInput struct {
	BusID       int64  `json:"bus_id"`
	TravelDate  string `json:"travel_date"`
	SeatsBooked int    `json:"seats_booked"`
}

type HotelBookingInput struct {
	HotelID      int64  `json:"hotel_id"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	NumRooms     int    `json:"num_rooms"`
}

// BookPackage books an unconstrained good: no capacity counter exists for
// packages, so any quantity succeeds as long as the package is available.
func (s BookingService) BookPackage(customerID int64, in PackageBookingInput) (models.Booking, error) {
	if in.PackageID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "package_id", Msg: "wajib diisi"}
	}
	if in.SeatsBooked <= 0 {
		in.SeatsBooked = 1
	}
	travelDate := strings.TrimSpace(in.TravelDate)
	if travelDate == "" {
		travelDate = utils.Today()
	} else if _, err := utils.ParseDate(travelDate); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "travel_date", Msg: "format harus YYYY-MM-DD"}
	}

	pkg, err := repositories.PackageRepo{DB: s.db()}.GetAvailableByID(in.PackageID)
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		CustomerID:  customerID,
		PackageID:   in.PackageID,
		TravelDate:  travelDate,
		SeatsBooked: in.SeatsBooked,
		TotalAmount: pkg.Price * float64(in.SeatsBooked),
		Status:      models.BookingStatusConfirmed,
	}
	id, err := s.bookings().InsertPackageBooking(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.BookingID = id
	b.PackageTitle = pkg.Title
	b.PackageDestination = pkg.Destination

	utils.LogEvent(s.RequestID, "booking", "book_package",
		"booking_id="+itoa(id)+" package_id="+itoa(in.PackageID)+" total="+utils.FormatMoney(b.TotalAmount))
	return b, nil
}

// BookVehicle reserves seats and inserts the booking in one transaction.
// The decrement is a conditional UPDATE guarded by available_seats >= n,
// so two concurrent bookings near capacity cannot both win: the loser
// sees zero affected rows and the whole transaction rolls back.
func (s BookingService) BookVehicle(customerID int64, in VehicleBookingInput) (models.Booking, error) {
	if in.BusID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "bus_id", Msg: "wajib diisi"}
	}
	if in.SeatsBooked <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "seats_booked", Msg: "minimal 1"}
	}
	travelDate := strings.TrimSpace(in.TravelDate)
	if travelDate == "" {
		return models.Booking{}, domain.ValidationError{Field: "travel_date", Msg: "wajib diisi"}
	}
	if _, err := utils.ParseDate(travelDate); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "travel_date", Msg: "format harus YYYY-MM-DD"}
	}

	vehicleRepo := repositories.VehicleRepo{DB: s.db()}
	v, err := vehicleRepo.GetActiveByID(in.BusID)
	if err != nil {
		return models.Booking{}, err
	}
	if v.AvailableSeats < in.SeatsBooked {
		return models.Booking{}, domain.CapacityError{Msg: "kursi tidak mencukupi"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := vehicleRepo.ReserveSeats(tx, in.BusID, in.SeatsBooked); err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		CustomerID:  customerID,
		BusID:       in.BusID,
		TravelDate:  travelDate,
		SeatsBooked: in.SeatsBooked,
		TotalAmount: v.FarePerSeat * float64(in.SeatsBooked),
		Status:      models.BookingStatusPending,
	}
	id, err := s.bookings().InsertVehicleBookingTx(tx, b)
	if err != nil {
		return models.Booking{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	b.BookingID = id
	b.BusNumber = v.BusNumber
	b.Source = v.Source
	b.VehicleDestination = v.Destination

	utils.LogEvent(s.RequestID, "booking", "book_vehicle",
		"booking_id="+itoa(id)+" bus_id="+itoa(in.BusID)+
			" seats="+strconv.Itoa(in.SeatsBooked)+" total="+utils.FormatMoney(b.TotalAmount))
	return b, nil
}

// BookHotel prices rooms by nights. available_rooms is not checked here;
// the counter exists in the schema but has never been enforced by this
// flow, and the admin side has no tooling to keep it honest yet.
func (s BookingService) BookHotel(customerID int64, in HotelBookingInput) (models.HotelBooking, error) {
	if in.HotelID <= 0 || in.CheckinDate == "" || in.CheckoutDate == "" || in.NumRooms <= 0 {
		return models.HotelBooking{}, domain.ValidationError{
			Msg: "hotel_id, checkin_date, checkout_date, dan num_rooms wajib diisi",
		}
	}

	checkin, err := utils.ParseDate(in.CheckinDate)
	if err != nil {
		return models.HotelBooking{}, domain.ValidationError{Field: "checkin_date", Msg: "format harus YYYY-MM-DD"}
	}
	checkout, err := utils.ParseDate(in.CheckoutDate)
	if err != nil {
		return models.HotelBooking{}, domain.ValidationError{Field: "checkout_date", Msg: "format harus YYYY-MM-DD"}
	}
	nights := utils.DaysBetween(checkin, checkout)
	if nights <= 0 {
		return models.HotelBooking{}, domain.ValidationError{Msg: "tanggal check-out harus setelah check-in"}
	}

	hotel, err := repositories.HotelRepo{DB: s.db()}.GetByID(in.HotelID)
	if err != nil {
		return models.HotelBooking{}, err
	}

	b := models.HotelBooking{
		CustomerID:    customerID,
		HotelID:       in.HotelID,
		CheckInDate:   in.CheckinDate,
		CheckOutDate:  in.CheckoutDate,
		NumberOfRooms: in.NumRooms,
		Nights:        nights,
		TotalAmount:   hotel.PricePerNight * float64(in.NumRooms) * float64(nights),
		Status:        models.BookingStatusConfirmed,
		PaymentStatus: "paid",
	}
	id, err := s.hotelBookings().Insert(b)
	if err != nil {
		return models.HotelBooking{}, err
	}
	b.BookingID = id
	b.HotelName = hotel.Name
	b.Location = hotel.Location

	utils.LogEvent(s.RequestID, "booking", "book_hotel",
		"booking_id="+itoa(id)+" hotel_id="+itoa(in.HotelID)+
			" nights="+strconv.Itoa(nights)+" total="+utils.FormatMoney(b.TotalAmount))
	return b, nil
}

// CancelBooking moves an owned booking to cancelled. cancelled and
// completed are terminal, so repeat cancels and post-trip cancels fail.
// Vehicle seats are NOT restored; released seats would need a refund
// policy that does not exist.
func (s BookingService) CancelBooking(customerID, bookingID int64) error {
	b, err := s.bookings().GetOwnedByID(bookingID, customerID)
	if err != nil {
		return err
	}
	if err := checkCancellable(b.Status); err != nil {
		return err
	}
	if err := s.bookings().UpdateStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "booking_id="+itoa(bookingID))
	return nil
}

func (s BookingService) CancelHotelBooking(customerID, bookingID int64) error {
	b, err := s.hotelBookings().GetOwnedByID(bookingID, customerID)
	if err != nil {
		return err
	}
	if err := checkCancellable(b.Status); err != nil {
		return err
	}
	if err := s.hotelBookings().UpdateStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel_hotel", "booking_id="+itoa(bookingID))
	return nil
}

func checkCancellable(status string) error {
	switch status {
	case models.BookingStatusCancelled:
		return domain.StateError{Status: status, Msg: "booking sudah dibatalkan"}
	case models.BookingStatusCompleted:
		return domain.StateError{Status: status, Msg: "booking yang selesai tidak bisa dibatalkan"}
	default:
		return nil
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
