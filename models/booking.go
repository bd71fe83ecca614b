package models

import "time"

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Normalize maps an absent status to pending. Records written before the
// status field existed carry no value and must behave as pending everywhere.
func (s BookingStatus) Normalize() BookingStatus {
	if s == "" {
		return StatusPending
	}
	return s
}

// IsTerminal reports whether no further transitions are legal.
func (s BookingStatus) IsTerminal() bool {
	switch s.Normalize() {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BookingTimeSlot is the reserved window within the booking's date.
type BookingTimeSlot struct {
	Start           TimeOfDay `bson:"start" json:"start"`
	End             TimeOfDay `bson:"end" json:"end"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
}

// SessionDetails describes what the session covers.
type SessionDetails struct {
	Technique  string `bson:"technique" json:"technique"`
	SkillLevel string `bson:"skillLevel" json:"skillLevel"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PaymentInfo is the booking's payment sub-ledger. TotalAmount and
// AmountDue are derived on every write and never trusted from input.
type PaymentInfo struct {
	Status      string    `bson:"status" json:"status"` // "unpaid", "partial", "paid"
	TotalAmount float64   `bson:"totalAmount" json:"totalAmount"`
	AmountPaid  float64   `bson:"amountPaid" json:"amountPaid"`
	AmountDue   float64   `bson:"amountDue" json:"amountDue"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// Payment status values.
const (
	PaymentUnpaid  = "unpaid"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// Booking is the durable booking record. Identity (ID) is immutable once
// created; status, payment and schedule fields stay mutable until the
// record reaches a terminal status.
type Booking struct {
	ID             string  `bson:"id" json:"id"`
	BookingNumber  string  `bson:"bookingNumber" json:"bookingNumber"` // display only, not a storage key
	ProviderID     string  `bson:"providerId" json:"providerId"`
	ClientID       string  `bson:"clientId" json:"clientId"`
	FirstName      string  `bson:"firstName" json:"firstName"`
	LastName       string  `bson:"lastName" json:"lastName"`
	Email          string  `bson:"email" json:"email"`
	Phone          string  `bson:"phone" json:"phone"`
	Date           string  `bson:"date" json:"date"` // "2006-01-02"
	TimeSlot       BookingTimeSlot `bson:"timeSlot" json:"timeSlot"`
	SessionDetails SessionDetails  `bson:"sessionDetails" json:"sessionDetails"`
	Status         BookingStatus   `bson:"status,omitempty" json:"status,omitempty"`

	// CustomHourlyRate overrides the provider's rate for this booking only.
	CustomHourlyRate *float64    `bson:"customHourlyRate,omitempty" json:"customHourlyRate,omitempty"`
	PaymentInfo      PaymentInfo `bson:"paymentInfo" json:"paymentInfo"`

	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
	ConfirmedAt *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	RejectedAt  *time.Time `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`

	RejectionReason    string `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CancellationReason string `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
}
