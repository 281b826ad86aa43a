package entity

import (
	"github.com/google/uuid"
)

// Payment tracks one gateway checkout attempt. At most one PENDING payment
// exists per booking; a terminal payment is never transitioned again.
type Payment struct {
	Base
	BookingID       uuid.UUID     `db:"booking_id"`
	PackageID       uuid.UUID     `db:"package_id"`
	Amount          float64       `db:"amount"`
	Currency        string        `db:"currency"`
	TransactionID   string        `db:"transaction_id"`
	Status          PaymentStatus `db:"status"`
	PaymentMethod   string        `db:"payment_method"`
	GatewayResponse string        `db:"gateway_response"`
}
