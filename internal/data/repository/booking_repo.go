package repository

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateAggregate persists one booking together with its rider children
	// and, for VIP bookings, claims the referenced table. Everything happens
	// in a single transaction: either the table flip, the booking row and
	// every rider row are all committed, or none of them are. A lost claim
	// race returns ErrTableUnavailable.
	CreateAggregate(ctx context.Context, booking *entity.Booking, riders []*entity.Rider) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// OTP fields live on the booking row
	SetOTP(ctx context.Context, bookingID uuid.UUID, code string, expiresAt time.Time) error
	MarkOTPVerified(ctx context.Context, bookingID uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateAggregate(ctx context.Context, booking *entity.Booking, riders []*entity.Rider) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if booking.TableID != nil {
		// Conditional update is the synchronization point: of N concurrent
		// claims for the same table exactly one affects a row, the rest
		// lose and roll back.
		tag, err := tx.Exec(ctx,
			`UPDATE tables SET is_available = FALSE WHERE id = $1 AND is_available = TRUE`,
			*booking.TableID,
		)
		if err != nil {
			r.log.Error("Failed to claim table",
				zap.Error(err),
				zap.String("table_id", booking.TableID.String()),
			)
			return fmt.Errorf("claim table %s: %w", booking.TableID.String(), err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("claim table %s: %w", booking.TableID.String(), ErrTableUnavailable)
		}
	}

	insertBooking := `
		INSERT INTO bookings (id, event_id, package_id, table_id, full_name, contact_number,
		                      email, emirates_id, emirates_id_file, seats_booked, payment_status,
		                      booking_date, otp_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = tx.Exec(ctx, insertBooking,
		booking.ID,
		booking.EventID,
		booking.PackageID,
		booking.TableID,
		booking.FullName,
		booking.ContactNumber,
		booking.Email,
		booking.EmiratesID,
		booking.EmiratesFile,
		booking.SeatsBooked,
		booking.PaymentStatus,
		booking.BookingDate,
		booking.OTPVerified,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	insertRider := `
		INSERT INTO riders (id, booking_id, package_id, rider_name, rider_emirates_id,
		                    rider_email, rider_contact_number, rider_emirates_id_file, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, rider := range riders {
		_, err = tx.Exec(ctx, insertRider,
			rider.ID,
			rider.BookingID,
			rider.PackageID,
			rider.Name,
			rider.EmiratesID,
			rider.Email,
			rider.ContactNumber,
			rider.EmiratesFile,
			rider.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create rider",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("rider_name", rider.Name),
			)
			return fmt.Errorf("create rider for booking %s: %w", booking.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, event_id, package_id, table_id, full_name, contact_number,
		       email, emirates_id, emirates_id_file, seats_booked, payment_status,
		       booking_date, otp_code, otp_verified, otp_expires_at, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.PackageID,
		&booking.TableID,
		&booking.FullName,
		&booking.ContactNumber,
		&booking.Email,
		&booking.EmiratesID,
		&booking.EmiratesFile,
		&booking.SeatsBooked,
		&booking.PaymentStatus,
		&booking.BookingDate,
		&booking.OTPCode,
		&booking.OTPVerified,
		&booking.OTPExpiresAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) SetOTP(ctx context.Context, bookingID uuid.UUID, code string, expiresAt time.Time) error {
	// Overwrites any prior code and resets the verified flag: issuing a new
	// code invalidates the old one.
	query := `
		UPDATE bookings
		SET otp_code = $2, otp_verified = FALSE, otp_expires_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, code, expiresAt)
	if err != nil {
		r.log.Error("Failed to set OTP",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("set OTP for booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) MarkOTPVerified(ctx context.Context, bookingID uuid.UUID) error {
	// Clearing the code makes it single-use
	query := `
		UPDATE bookings
		SET otp_verified = TRUE, otp_code = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to mark OTP verified",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("mark OTP verified for booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
