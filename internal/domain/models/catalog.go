package models

// TourPackage is an agent-owned bookable without capacity tracking.
type TourPackage struct {
	PackageID     int64   `json:"package_id"`
	AgentID       int64   `json:"agent_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Destination   string  `json:"destination"`
	StartLocation string  `json:"start_location"`
	Price         float64 `json:"price"`
	DurationDays  int     `json:"duration_days"`
	Includes      string  `json:"includes,omitempty"`
	Excludes      string  `json:"excludes,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at,omitempty"`

	// Joined agent info for public listings.
	AgentName      string  `json:"agent_name,omitempty"`
	AgentPhone     string  `json:"agent_phone,omitempty"`
	CommissionRate float64 `json:"commission_rate,omitempty"`
}

// Vehicle is an agent-owned bus with a mutable seat counter.
// Invariant: 0 <= available_seats <= total_seats.
type Vehicle struct {
	BusID          int64   `json:"bus_id"`
	AgentID        int64   `json:"agent_id"`
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
	CreatedAt      string  `json:"created_at,omitempty"`

	AgentName      string  `json:"agent_name,omitempty"`
	AgentPhone     string  `json:"agent_phone,omitempty"`
	CommissionRate float64 `json:"commission_rate,omitempty"`
}

// Hotel has no agent owner. available_rooms exists in the schema but is
// not enforced by the booking path.
type Hotel struct {
	HotelID        int64   `json:"hotel_id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Description    string  `json:"description,omitempty"`
	PricePerNight  float64 `json:"price_per_night"`
	Rating         float64 `json:"rating"`
	AvailableRooms int     `json:"available_rooms"`
	Amenities      string  `json:"amenities,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// Destination is read-only reference data. The link to packages and
// hotels is a best-effort name LIKE match, not a foreign key.
type Destination struct {
	DestinationID      int64  `json:"destination_id"`
	Name               string `json:"name"`
	Country            string `json:"country"`
	Description        string `json:"description,omitempty"`
	PopularAttractions string `json:"popular_attractions,omitempty"`
	ImageURL           string `json:"image_url,omitempty"`

	TotalBookings int `json:"total_bookings,omitempty"`
}
