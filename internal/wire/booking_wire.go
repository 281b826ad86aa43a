package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, uploadHandler *adaptor.UploadHandler) {
	// POST /api/v2/bookings - Create a booking (multipart, includes documents)
	r.Post("/api/v2/bookings", bookingHandler.CreateBooking)

	// GET /api/v2/bookings/{id} - Booking details with riders and amount
	r.Get("/api/v2/bookings/{id}", bookingHandler.GetBooking)

	// POST /api/v2/upload - Standalone document upload
	r.Post("/api/v2/upload", uploadHandler.Upload)
}
