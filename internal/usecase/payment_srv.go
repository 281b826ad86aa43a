package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/internal/gateway"
	"event-booking/internal/notifier"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const gatewayResultSuccess = "SUCCESS"

type PaymentService interface {
	// CreateSession opens a hosted checkout session for a booking. At most
	// one PENDING payment may exist per booking; the payment row is only
	// persisted after the gateway accepted the session.
	CreateSession(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentSessionResponse, error)

	// RetryPayment removes a stale PENDING payment so a fresh session can
	// be opened. Refused once the booking is COMPLETED.
	RetryPayment(ctx context.Context, bookingID string) error

	// VerifyPayment proxies a synchronous status query to the gateway.
	// Read-only; local state is never mutated.
	VerifyPayment(ctx context.Context, transactionID string) (json.RawMessage, error)

	// HandleWebhook reconciles an asynchronous gateway callback exactly
	// once. Redeliveries of terminal payments are acknowledged as no-ops.
	HandleWebhook(ctx context.Context, payload []byte) (*response.WebhookAckResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	config  utils.GatewayConfig
	gateway gateway.Client
	mail    notifier.Notifier
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, config utils.GatewayConfig, gw gateway.Client, mail notifier.Notifier, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		config:  config,
		gateway: gw,
		mail:    mail,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreateSession(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentSessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, req.BookingID)
	}
	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package ID %s", ErrValidation, req.PackageID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("resolve booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", req.BookingID, ErrNotFound)
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("resolve package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s: %w", req.PackageID, ErrNotFound)
	}

	// The client-supplied amount is advisory; it must match what the
	// package and seat count imply.
	expected := pkg.Price * float64(booking.SeatsBooked)
	if req.Amount != expected {
		return nil, fmt.Errorf("%w: amount %.2f does not match expected %.2f", ErrValidation, req.Amount, expected)
	}

	pending, err := s.repo.Payment.FindPendingByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check pending payment: %w", err)
	}
	if pending != nil {
		return nil, fmt.Errorf("%w: payment already initiated for this booking", ErrConflict)
	}

	// Transaction id is fixed before the gateway call so the mapping from
	// external order to booking never depends on the gateway response.
	transactionID := utils.GenerateTransactionID(bookingID)

	session, rawResponse, err := s.gateway.CreateCheckoutSession(ctx)
	if err != nil {
		s.log.Error("Gateway session creation failed",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:       bookingID,
		PackageID:       packageID,
		Amount:          req.Amount,
		Currency:        s.config.Currency,
		TransactionID:   transactionID,
		Status:          entity.PaymentStatusPending,
		PaymentMethod:   "gateway",
		GatewayResponse: string(rawResponse),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	s.log.Info("Payment session created",
		zap.String("booking_id", req.BookingID),
		zap.String("transaction_id", transactionID),
		zap.Float64("amount", req.Amount),
	)

	return &response.PaymentSessionResponse{
		TransactionID:       transactionID,
		SessionID:           session.SessionID,
		SessionKey:          session.SessionKey,
		AuthenticationLimit: session.AuthenticationLimit,
	}, nil
}

func (s *paymentService) RetryPayment(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	if booking.PaymentStatus == entity.PaymentStatusCompleted {
		return fmt.Errorf("%w: payment already completed", ErrConflict)
	}

	if err := s.repo.Payment.DeleteByBookingID(ctx, id); err != nil {
		return fmt.Errorf("remove stale payment: %w", err)
	}

	s.log.Info("Payment retry allowed", zap.String("booking_id", bookingID))
	return nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, transactionID string) (json.RawMessage, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", ErrValidation)
	}

	body, err := s.gateway.GetOrderStatus(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return json.RawMessage(body), nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte) (*response.WebhookAckResponse, error) {
	var parsed request.WebhookPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid webhook payload", ErrValidation)
	}
	if parsed.Order == nil || parsed.Result == nil {
		return nil, fmt.Errorf("%w: invalid webhook payload", ErrValidation)
	}
	if parsed.Order.ID == "" {
		return nil, fmt.Errorf("%w: transaction ID missing", ErrValidation)
	}

	payment, err := s.repo.Payment.FindByTransactionID(ctx, parsed.Order.ID)
	if err != nil {
		return nil, fmt.Errorf("look up payment: %w", err)
	}
	if payment == nil {
		// No local state is fabricated for unknown orders; a retry-deleted
		// payment lands here too and is dropped.
		s.log.Warn("Webhook for unknown transaction dropped",
			zap.String("transaction_id", parsed.Order.ID),
		)
		return nil, fmt.Errorf("payment for transaction %s: %w", parsed.Order.ID, ErrNotFound)
	}

	// Primary defense against duplicate delivery
	if payment.Status.IsTerminal() {
		s.log.Info("Webhook redelivery ignored",
			zap.String("transaction_id", parsed.Order.ID),
			zap.String("status", string(payment.Status)),
		)
		return &response.WebhookAckResponse{Success: true, Message: "Already processed"}, nil
	}

	status := entity.PaymentStatusFailed
	if parsed.Result.Status == gatewayResultSuccess {
		status = entity.PaymentStatusCompleted
	}

	applied, err := s.repo.Payment.Finalize(ctx, payment.ID, payment.BookingID, status, string(payload))
	if err != nil {
		return nil, fmt.Errorf("finalize payment: %w", err)
	}
	if !applied {
		// A concurrent webhook or retry finalized first
		return &response.WebhookAckResponse{Success: true, Message: "Already processed"}, nil
	}

	s.log.Info("Payment reconciled",
		zap.String("transaction_id", parsed.Order.ID),
		zap.String("booking_id", payment.BookingID.String()),
		zap.String("status", string(status)),
	)

	if status == entity.PaymentStatusCompleted {
		s.sendConfirmation(ctx, payment)
	}

	return &response.WebhookAckResponse{Success: true}, nil
}

// sendConfirmation runs after the financial transaction is committed; a
// delivery failure is logged and swallowed.
func (s *paymentService) sendConfirmation(ctx context.Context, payment *entity.Payment) {
	booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil || booking == nil || booking.Email == "" {
		s.log.Warn("Skipping confirmation email",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking has been successfully confirmed.\n\nBooking ID: %s\nAmount Paid: %s %.2f\n\nThank you for booking with us!\n",
		booking.FullName, booking.ID.String(), payment.Currency, payment.Amount,
	)

	if err := s.mail.SendEmail(ctx, booking.Email, "Booking Confirmed", body); err != nil {
		s.log.Warn("Confirmation email failed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}
