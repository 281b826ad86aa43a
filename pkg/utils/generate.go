package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== OTP ====================

// GenerateOTP creates a numeric one-time code of the given length.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}

	return otp
}

// ==================== TRANSACTION ID ====================

// GenerateTransactionID builds the gateway order reference for a booking.
// The id is created before the gateway is contacted so the mapping from
// external order to internal booking never depends on the gateway response.
// Format: BOOK-<booking id>-<8 hex chars>
func GenerateTransactionID(bookingID uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("BOOK-%s-%s", bookingID.String(), suffix)
}

// ==================== STORED FILE NAME ====================

// GenerateStoredFileName builds a collision-free name for an uploaded
// document, keeping the original extension.
func GenerateStoredFileName(prefix, originalName string) string {
	ext := ""
	if idx := strings.LastIndex(originalName, "."); idx >= 0 {
		ext = strings.ToLower(originalName[idx:])
	}
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix != "" {
		return fmt.Sprintf("%s_%s%s", prefix, name, ext)
	}
	return name + ext
}
