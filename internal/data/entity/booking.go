package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsTerminal reports whether the status can no longer change.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Booking is the aggregate root for riders and payment.
// VIP bookings reference exactly one table and have seats_booked == 1;
// rider bookings have no table and seats_booked == number of rider rows.
type Booking struct {
	Base
	EventID       int64         `db:"event_id"`
	PackageID     uuid.UUID     `db:"package_id"`
	TableID       *uuid.UUID    `db:"table_id"`
	FullName      string        `db:"full_name"`
	ContactNumber string        `db:"contact_number"`
	Email         string        `db:"email"`
	EmiratesID    string        `db:"emirates_id"`
	EmiratesFile  string        `db:"emirates_id_file"`
	SeatsBooked   int           `db:"seats_booked"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	BookingDate   time.Time     `db:"booking_date"`

	OTPCode      *string    `db:"otp_code"`
	OTPVerified  bool       `db:"otp_verified"`
	OTPExpiresAt *time.Time `db:"otp_expires_at"`
}
