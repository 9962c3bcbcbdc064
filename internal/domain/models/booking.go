package models

// Booking is the shared ledger for package and vehicle purchases.
// Exactly one of PackageID / BusID is set.
type Booking struct {
	BookingID   int64   `json:"booking_id"`
	CustomerID  int64   `json:"customer_id"`
	PackageID   int64   `json:"package_id,omitempty"`
	BusID       int64   `json:"bus_id,omitempty"`
	TravelDate  string  `json:"travel_date"`
	SeatsBooked int     `json:"seats_booked"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`

	// Joined columns for listings, filled best-effort.
	PackageTitle       string `json:"package_title,omitempty"`
	PackageDestination string `json:"package_destination,omitempty"`
	StartLocation      string `json:"start_location,omitempty"`
	DurationDays       int    `json:"duration_days,omitempty"`
	BusNumber          string `json:"bus_number,omitempty"`
	BusType            string `json:"bus_type,omitempty"`
	Source             string `json:"source,omitempty"`
	VehicleDestination string `json:"vehicle_destination,omitempty"`
	CustomerName       string `json:"customer_name,omitempty"`
	PaymentStatus      string `json:"payment_status,omitempty"`
	PaymentMethod      string `json:"payment_method,omitempty"`
}

type HotelBooking struct {
	BookingID     int64   `json:"booking_id"`
	CustomerID    int64   `json:"customer_id"`
	HotelID       int64   `json:"hotel_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	NumberOfRooms int     `json:"number_of_rooms"`
	Nights        int     `json:"nights,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at,omitempty"`

	HotelName     string  `json:"hotel_name,omitempty"`
	Location      string  `json:"location,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Amenities     string  `json:"amenities,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// Booking statuses. cancelled and completed are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)
