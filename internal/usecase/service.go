package usecase

import (
	"context"

	"event-booking/internal/cms"
	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/gateway"
	"event-booking/internal/notifier"
	"event-booking/internal/storage"
	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

// CatalogCache is the slice of the redis cache the services need. A nil
// cache disables caching entirely.
type CatalogCache interface {
	GetPackages(ctx context.Context) ([]*entity.Package, error)
	SetPackages(ctx context.Context, packages []*entity.Package) error
	GetTables(ctx context.Context) ([]*entity.Table, error)
	SetTables(ctx context.Context, tables []*entity.Table) error
	InvalidateTables(ctx context.Context) error
}

type Service struct {
	Catalog CatalogService
	Booking BookingService
	Payment PaymentService
	OTP     OTPService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	gw gateway.Client,
	events cms.Client,
	mail notifier.Notifier,
	files storage.FileStore,
	catalogCache CatalogCache,
	log *zap.Logger,
) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, events, catalogCache, log),
		Booking: NewBookingService(repo, files, catalogCache, log),
		Payment: NewPaymentService(repo, config.Gateway, gw, mail, log),
		OTP:     NewOTPService(repo, config.OTP, mail, log),
	}
}
