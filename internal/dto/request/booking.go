package request

import "io"

// FileUpload carries one identity document stream from the multipart form
// to the document store.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

// RiderInput is one manifest entry of a RIDER booking. The document for the
// entry travels separately in CreateBookingRequest.RiderFiles, matched by
// position.
type RiderInput struct {
	Name          string `json:"rider_name" validate:"required"`
	EmiratesID    string `json:"rider_emirates_id" validate:"required"`
	Email         string `json:"rider_email" validate:"required,email"`
	ContactNumber string `json:"rider_contact_number" validate:"required"`
}

type CreateBookingRequest struct {
	EventID   int64  `json:"event_id" validate:"required"`
	PackageID string `json:"package_id" validate:"required,uuid"`

	// VIP fields; presence is enforced per package type in the service
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	EmiratesID    string `json:"emirates_id"`
	TableID       string `json:"table_id"`
	EmiratesFile  *FileUpload

	// Rider manifest; one file per entry, same order
	Riders     []RiderInput
	RiderFiles []*FileUpload
}
