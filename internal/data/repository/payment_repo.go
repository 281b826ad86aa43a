package repository

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	FindPendingByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error

	// Finalize moves a PENDING payment to a terminal status and mirrors it
	// onto the booking in one transaction, storing the raw gateway payload.
	// Returns false without error when the payment was no longer PENDING:
	// a concurrent finalizer or a retry-delete won, which is a no-op here.
	Finalize(ctx context.Context, paymentID, bookingID uuid.UUID, status entity.PaymentStatus, rawPayload string) (bool, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, package_id, amount, currency, transaction_id,
		                      status, payment_method, gateway_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.PackageID,
		payment.Amount,
		payment.Currency,
		payment.TransactionID,
		payment.Status,
		payment.PaymentMethod,
		payment.GatewayResponse,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("transaction_id", payment.TransactionID),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, package_id, amount, currency, transaction_id,
		       status, payment_method, gateway_response, created_at, updated_at
		FROM payments
		WHERE transaction_id = $1
	`

	return r.scanOne(ctx, query, transactionID)
}

func (r *paymentRepository) FindPendingByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, package_id, amount, currency, transaction_id,
		       status, payment_method, gateway_response, created_at, updated_at
		FROM payments
		WHERE booking_id = $1 AND status = 'PENDING'
		LIMIT 1
	`

	return r.scanOne(ctx, query, bookingID)
}

func (r *paymentRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.PackageID,
		&payment.Amount,
		&payment.Currency,
		&payment.TransactionID,
		&payment.Status,
		&payment.PaymentMethod,
		&payment.GatewayResponse,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err))
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM payments WHERE booking_id = $1`

	result, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete payment for booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Stale payment deleted", zap.String("booking_id", bookingID.String()))
	}

	return nil
}

func (r *paymentRepository) Finalize(ctx context.Context, paymentID, bookingID uuid.UUID, status entity.PaymentStatus, rawPayload string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin finalize transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The status guard keeps redelivered webhooks and concurrent retries
	// from double-applying: only the transition out of PENDING wins.
	tag, err := tx.Exec(ctx,
		`UPDATE payments SET status = $2, gateway_response = $3, updated_at = NOW()
		 WHERE id = $1 AND status = 'PENDING'`,
		paymentID, status, rawPayload,
	)
	if err != nil {
		r.log.Error("Failed to finalize payment",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("finalize payment %s: %w", paymentID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`,
		bookingID, status,
	)
	if err != nil {
		r.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update booking %s payment status: %w", bookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit finalize for payment %s: %w", paymentID.String(), err)
	}

	return true, nil
}
