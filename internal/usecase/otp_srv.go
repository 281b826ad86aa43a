package usecase

import (
	"context"
	"fmt"
	"time"

	"event-booking/internal/data/repository"
	"event-booking/internal/notifier"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OTPService interface {
	// IssueOTP generates a fresh code for the booking, replacing any
	// previous one, and emails it to the booking contact best-effort.
	IssueOTP(ctx context.Context, bookingID string) error

	// VerifyOTP checks the submitted code. Repeat verification of an
	// already verified booking succeeds idempotently; a matched code is
	// cleared and cannot be replayed.
	VerifyOTP(ctx context.Context, bookingID, code string) error
}

type otpService struct {
	repo   *repository.Repository
	config utils.OTPConfig
	mail   notifier.Notifier
	log    *zap.Logger
}

func NewOTPService(repo *repository.Repository, config utils.OTPConfig, mail notifier.Notifier, log *zap.Logger) OTPService {
	return &otpService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "otp")),
	}
}

func (s *otpService) IssueOTP(ctx context.Context, bookingID string) error {
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

	code := utils.GenerateOTP(s.config.Length)
	expiresAt := time.Now().Add(time.Duration(s.config.ExpiryMinutes) * time.Minute)

	if err := s.repo.Booking.SetOTP(ctx, id, code, expiresAt); err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}

	s.log.Info("OTP issued",
		zap.String("booking_id", bookingID),
		zap.Time("expires_at", expiresAt),
	)

	if booking.Email != "" {
		body := fmt.Sprintf("Your OTP code is: %s\nIt will expire in %d minutes.", code, s.config.ExpiryMinutes)
		if err := s.mail.SendEmail(ctx, booking.Email, "Your Booking OTP Code", body); err != nil {
			s.log.Warn("OTP email failed",
				zap.Error(err),
				zap.String("booking_id", bookingID),
			)
		}
	}

	return nil
}

func (s *otpService) VerifyOTP(ctx context.Context, bookingID, code string) error {
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

	if booking.OTPVerified {
		return nil
	}

	if booking.OTPCode == nil || *booking.OTPCode != code {
		return fmt.Errorf("%w: invalid OTP", ErrValidation)
	}

	// Expiry is judged against the server clock now, not at issuance
	if booking.OTPExpiresAt == nil || time.Now().After(*booking.OTPExpiresAt) {
		return fmt.Errorf("%w: OTP expired", ErrValidation)
	}

	if err := s.repo.Booking.MarkOTPVerified(ctx, id); err != nil {
		return fmt.Errorf("mark OTP verified: %w", err)
	}

	s.log.Info("OTP verified", zap.String("booking_id", bookingID))
	return nil
}
