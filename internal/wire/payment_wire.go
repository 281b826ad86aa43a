package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/v2/payment/create-session - Open a hosted checkout session
	r.Post("/api/v2/payment/create-session", paymentHandler.CreateSession)

	// POST /api/v2/payment/retry/{booking_id} - Clear a stale pending attempt
	r.Post("/api/v2/payment/retry/{booking_id}", paymentHandler.RetryPayment)

	// GET /api/v2/payment/verify/{transaction_id} - Read order state from the gateway
	r.Get("/api/v2/payment/verify/{transaction_id}", paymentHandler.VerifyPayment)

	// POST /api/v2/payment/webhook - Gateway result callback (idempotent)
	r.Post("/api/v2/payment/webhook", paymentHandler.Webhook)
}
