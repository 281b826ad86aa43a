package repository

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RiderRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Rider, error)
}

type riderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRiderRepository(db database.PgxIface, log *zap.Logger) RiderRepository {
	return &riderRepository{
		db:  db,
		log: log.With(zap.String("repository", "rider")),
	}
}

func (r *riderRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Rider, error) {
	query := `
		SELECT id, booking_id, package_id, rider_name, rider_emirates_id,
		       rider_email, rider_contact_number, rider_emirates_id_file, created_at
		FROM riders
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find riders by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find riders by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var riders []*entity.Rider
	for rows.Next() {
		var rider entity.Rider
		err := rows.Scan(
			&rider.ID,
			&rider.BookingID,
			&rider.PackageID,
			&rider.Name,
			&rider.EmiratesID,
			&rider.Email,
			&rider.ContactNumber,
			&rider.EmiratesFile,
			&rider.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rider row", zap.Error(err))
			return nil, fmt.Errorf("scan rider row: %w", err)
		}
		riders = append(riders, &rider)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rider rows: %w", err)
	}

	return riders, nil
}
