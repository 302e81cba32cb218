package model

type Nationality string

const (
	NationalityIndian    Nationality = "Indian"
	NationalityForeigner Nationality = "Foreigner"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// Booking ids take the form "B" + last 6 digits of a millisecond
// timestamp, so they are only time-locally unique. TicketType holds the
// ticket tier's display name, not its id.
type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	UserName    string        `json:"userName"`
	UserEmail   string        `json:"userEmail"`
	TicketType  string        `json:"ticketType"`
	Nationality Nationality   `json:"nationality"`
	VisitDate   string        `json:"visitDate"`
	Adults      int           `json:"adults"`
	Children    int           `json:"children"`
	TotalAmount float64       `json:"totalAmount"`
	Status      BookingStatus `json:"status,omitempty"`
	CreatedAt   string        `json:"createdAt"`
}
