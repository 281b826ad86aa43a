package entity

import (
	"github.com/google/uuid"
)

// Rider exists only as a child of a RIDER booking and is inserted in
// the same transaction as its parent.
type Rider struct {
	BaseSimple
	BookingID     uuid.UUID `db:"booking_id"`
	PackageID     uuid.UUID `db:"package_id"`
	Name          string    `db:"rider_name"`
	EmiratesID    string    `db:"rider_emirates_id"`
	Email         string    `db:"rider_email"`
	ContactNumber string    `db:"rider_contact_number"`
	EmiratesFile  string    `db:"rider_emirates_id_file"`
}
