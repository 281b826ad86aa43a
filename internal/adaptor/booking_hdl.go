package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBookingFormMemory = 32 << 20 // 32 MB

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/v2/bookings (multipart form)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBookingFormMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	eventID, err := strconv.ParseInt(r.FormValue("event_id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event_id", nil)
		return
	}

	req := &request.CreateBookingRequest{
		EventID:       eventID,
		PackageID:     r.FormValue("package_id"),
		FullName:      r.FormValue("full_name"),
		ContactNumber: r.FormValue("contact_number"),
		Email:         r.FormValue("email"),
		EmiratesID:    r.FormValue("emirates_id"),
		TableID:       r.FormValue("table_id"),
	}

	// VIP identity document
	if file, header, err := r.FormFile("emirates_id_file"); err == nil {
		defer file.Close()
		req.EmiratesFile = &request.FileUpload{Name: header.Filename, Reader: file}
	}

	// Rider manifest arrives as a JSON form field with one file per entry
	if ridersJSON := r.FormValue("riders"); ridersJSON != "" {
		if err := json.Unmarshal([]byte(ridersJSON), &req.Riders); err != nil {
			utils.ResponseBadRequest(w, "Invalid riders payload", nil)
			return
		}
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["rider_files"] {
			file, err := header.Open()
			if err != nil {
				utils.ResponseBadRequest(w, "Unreadable rider file", nil)
				return
			}
			defer file.Close()
			req.RiderFiles = append(req.RiderFiles, &request.FileUpload{Name: header.Filename, Reader: file})
		}
	}

	booking, err := h.service.CreateBooking(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/v2/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
