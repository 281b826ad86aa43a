package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type RiderResponse struct {
	ID            string `json:"id"`
	Name          string `json:"rider_name"`
	EmiratesID    string `json:"rider_emirates_id"`
	Email         string `json:"rider_email"`
	ContactNumber string `json:"rider_contact_number"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	BookingDate   time.Time       `json:"booking_date"`
	SeatsBooked   int             `json:"seats_booked"`
	PaymentStatus string          `json:"payment_status"`
	Amount        float64         `json:"amount"`
	Riders        []RiderResponse `json:"riders,omitempty"`
}

func RiderToResponse(rider *entity.Rider) RiderResponse {
	return RiderResponse{
		ID:            rider.ID.String(),
		Name:          rider.Name,
		EmiratesID:    rider.EmiratesID,
		Email:         rider.Email,
		ContactNumber: rider.ContactNumber,
	}
}

func BookingToResponse(booking *entity.Booking, amount float64, riders []*entity.Rider) *BookingResponse {
	resp := &BookingResponse{
		ID:            booking.ID.String(),
		FullName:      booking.FullName,
		Email:         booking.Email,
		BookingDate:   booking.BookingDate,
		SeatsBooked:   booking.SeatsBooked,
		PaymentStatus: string(booking.PaymentStatus),
		Amount:        amount,
	}

	for _, rider := range riders {
		resp.Riders = append(resp.Riders, RiderToResponse(rider))
	}

	return resp
}
