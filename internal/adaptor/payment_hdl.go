package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreateSession handles POST /api/v2/payment/create-session
func (h *PaymentHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create payment session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// RetryPayment handles POST /api/v2/payment/retry/{booking_id}
func (h *PaymentHandler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "booking_id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.RetryPayment(r.Context(), bookingID); err != nil {
		writeServiceError(w, h.log, err, "retry payment")
		return
	}

	utils.ResponseSuccess(w, "Retry allowed. Please create a new payment session.", nil)
}

// VerifyPayment handles GET /api/v2/payment/verify/{transaction_id}
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transaction_id")
	if transactionID == "" {
		utils.ResponseBadRequest(w, "Transaction ID is required", nil)
		return
	}

	status, err := h.service.VerifyPayment(r.Context(), transactionID)
	if err != nil {
		writeServiceError(w, h.log, err, "verify payment")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// Webhook handles POST /api/v2/payment/webhook. Malformed payloads are
// answered with 4xx so the gateway does not redeliver them indefinitely;
// processing failures get 500 and rely on gateway retries, which the
// idempotency gate makes safe.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Unreadable webhook payload", nil)
		return
	}

	ack, err := h.service.HandleWebhook(r.Context(), payload)
	if err != nil {
		writeServiceError(w, h.log, err, "process webhook")
		return
	}

	utils.ResponseSuccess(w, "success", ack)
}
