package repository

import (
	"event-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Package PackageRepository
	Table   TableRepository
	Booking BookingRepository
	Rider   RiderRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Package: NewPackageRepository(db, log),
		Table:   NewTableRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Rider:   NewRiderRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}
