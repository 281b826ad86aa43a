package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOTP(r chi.Router, otpHandler *adaptor.OTPHandler) {
	// POST /api/v2/otp/send/{booking_id} - Issue a code to the booking email
	r.Post("/api/v2/otp/send/{booking_id}", otpHandler.SendOTP)

	// POST /api/v2/otp/verify/{booking_id} - Verify the submitted code
	r.Post("/api/v2/otp/verify/{booking_id}", otpHandler.VerifyOTP)
}
