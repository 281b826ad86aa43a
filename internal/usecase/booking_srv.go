package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/internal/storage"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking allocates inventory for one package selection: an
	// exclusive table for VIP, a rider manifest for RIDER. The table claim
	// and all inserts commit atomically; a lost table race yields ErrConflict.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	files storage.FileStore
	cache CatalogCache
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, files storage.FileStore, cache CatalogCache, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		files: files,
		cache: cache,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package ID %s", ErrValidation, req.PackageID)
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("resolve package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s: %w", req.PackageID, ErrNotFound)
	}

	switch pkg.Type {
	case entity.PackageTypeVIP:
		return s.createVIPBooking(ctx, req, pkg)
	case entity.PackageTypeRider:
		return s.createRiderBooking(ctx, req, pkg)
	default:
		return nil, fmt.Errorf("%w: unknown package type %s", ErrValidation, pkg.Type)
	}
}

func (s *bookingService) createVIPBooking(ctx context.Context, req *request.CreateBookingRequest, pkg *entity.Package) (*response.BookingResponse, error) {
	if req.FullName == "" || req.ContactNumber == "" || req.Email == "" ||
		req.EmiratesID == "" || req.EmiratesFile == nil || req.TableID == "" {
		return nil, fmt.Errorf("%w: all VIP details are required", ErrValidation)
	}

	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid table ID %s", ErrValidation, req.TableID)
	}

	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("resolve table: %w", err)
	}
	if table == nil {
		return nil, fmt.Errorf("table %s: %w", req.TableID, ErrNotFound)
	}
	if !table.IsAvailable {
		return nil, fmt.Errorf("%w: table not available", ErrConflict)
	}

	// The document is stored before the transaction; the claim itself is
	// decided inside CreateAggregate so the pre-check above only fails fast.
	filePath, err := s.files.Save(req.EmiratesFile.Reader, req.EmiratesFile.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EventID:       req.EventID,
		PackageID:     pkg.ID,
		TableID:       &tableID,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		EmiratesID:    req.EmiratesID,
		EmiratesFile:  filePath,
		SeatsBooked:   1,
		PaymentStatus: entity.PaymentStatusPending,
		BookingDate:   now,
	}

	if err := s.repo.Booking.CreateAggregate(ctx, booking, nil); err != nil {
		if errors.Is(err, repository.ErrTableUnavailable) {
			return nil, fmt.Errorf("%w: table not available", ErrConflict)
		}
		s.log.Error("Failed to create VIP booking",
			zap.Error(err),
			zap.String("table_id", tableID.String()),
		)
		return nil, fmt.Errorf("create VIP booking: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateTables(ctx); err != nil {
			s.log.Warn("Table cache invalidation failed", zap.Error(err))
		}
	}

	s.log.Info("VIP booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("table_id", tableID.String()),
		zap.Float64("amount", pkg.Price),
	)

	return response.BookingToResponse(booking, pkg.Price, nil), nil
}

func (s *bookingService) createRiderBooking(ctx context.Context, req *request.CreateBookingRequest, pkg *entity.Package) (*response.BookingResponse, error) {
	if len(req.Riders) == 0 {
		return nil, fmt.Errorf("%w: at least one rider required", ErrValidation)
	}
	if len(req.RiderFiles) != len(req.Riders) {
		return nil, fmt.Errorf("%w: rider files mismatch", ErrValidation)
	}

	for i, rider := range req.Riders {
		if errs := utils.ValidateStruct(rider); len(errs) > 0 {
			return nil, fmt.Errorf("%w: rider %d: %s", ErrValidation, i+1, utils.FormatValidationErrors(errs))
		}
		if req.RiderFiles[i] == nil {
			return nil, fmt.Errorf("%w: rider files mismatch", ErrValidation)
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EventID:       req.EventID,
		PackageID:     pkg.ID,
		SeatsBooked:   len(req.Riders),
		PaymentStatus: entity.PaymentStatusPending,
		BookingDate:   now,
	}

	riders := make([]*entity.Rider, len(req.Riders))
	for i, input := range req.Riders {
		filePath, err := s.files.Save(req.RiderFiles[i].Reader, req.RiderFiles[i].Name)
		if err != nil {
			return nil, fmt.Errorf("%w: rider %d: %v", ErrValidation, i+1, err)
		}

		riders[i] = &entity.Rider{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:     booking.ID,
			PackageID:     pkg.ID,
			Name:          input.Name,
			EmiratesID:    input.EmiratesID,
			Email:         input.Email,
			ContactNumber: input.ContactNumber,
			EmiratesFile:  filePath,
		}
	}

	if err := s.repo.Booking.CreateAggregate(ctx, booking, riders); err != nil {
		s.log.Error("Failed to create rider booking",
			zap.Error(err),
			zap.Int("riders", len(riders)),
		)
		return nil, fmt.Errorf("create rider booking: %w", err)
	}

	amount := pkg.Price * float64(len(riders))

	s.log.Info("Rider booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("riders", len(riders)),
		zap.Float64("amount", amount),
	)

	return response.BookingToResponse(booking, amount, riders), nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	pkg, err := s.repo.Package.FindByID(ctx, booking.PackageID)
	if err != nil {
		return nil, fmt.Errorf("resolve package: %w", err)
	}

	riders, err := s.repo.Rider.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("load riders: %w", err)
	}

	var amount float64
	if pkg != nil {
		amount = pkg.Price * float64(booking.SeatsBooked)
	}

	return response.BookingToResponse(booking, amount, riders), nil
}
