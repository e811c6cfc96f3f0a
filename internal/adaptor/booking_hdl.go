package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

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

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Create booking validation failed",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	id, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", response.CreateBookingResponse{ID: id})
}

// SearchBookings handles GET /api/bookings?city=
func (h *BookingHandler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		utils.ResponseBadRequest(w, "city query parameter is required", nil)
		return
	}

	bookings, err := h.service.SearchBookings(r.Context(), city)
	if err != nil {
		h.handleServiceError(w, r, err, "search bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Booking ID must be a positive integer", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetAvailableSlots handles GET /api/slots?date=&city=
// The date is passed through as-is; a missing or malformed one yields no slots.
func (h *BookingHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date := query.Get("date")
	city := query.Get("city")

	if city == "" {
		utils.ResponseBadRequest(w, "city query parameter is required", nil)
		return
	}

	slots, err := h.service.GetAvailableSlots(r.Context(), date, city)
	if err != nil {
		h.handleServiceError(w, r, err, "get available slots")
		return
	}

	utils.ResponseSuccess(w, "success", response.SlotsResponse{Date: date, City: city, Slots: slots})
}

// GetRevenue handles GET /api/revenue?start_date=&end_date=&city=
func (h *BookingHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.RevenueRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		City:      query.Get("city"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	total, err := h.service.CalculateTotalRevenue(r.Context(), req.StartDate, req.EndDate, req.City)
	if err != nil {
		h.handleServiceError(w, r, err, "calculate total revenue")
		return
	}

	utils.ResponseSuccess(w, "success", response.RevenueResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		City:      req.City,
		Total:     total,
	})
}

// GetBookingStats handles GET /api/bookings/stats?city=
func (h *BookingHandler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		utils.ResponseBadRequest(w, "city query parameter is required", nil)
		return
	}

	stats, err := h.service.GetBookingStats(r.Context(), city)
	if err != nil {
		h.handleServiceError(w, r, err, "get booking stats")
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingStatsResponse{City: city, Stats: stats})
}

// GetDailyStats handles GET /api/bookings/daily?city=
func (h *BookingHandler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		utils.ResponseBadRequest(w, "city query parameter is required", nil)
		return
	}

	days, err := h.service.GetDailyStats(r.Context(), city)
	if err != nil {
		h.handleServiceError(w, r, err, "get daily stats")
		return
	}

	utils.ResponseSuccess(w, "success", response.DailyStatsResponse{City: city, Days: days})
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("request_id", requestID))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("request_id", requestID))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
