package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/services"

	"github.com/gin-gonic/gin"
)

// BookingController maneja la cotización y la confirmación de reservas
type BookingController struct {
	service services.BookingService
}

// NewBookingController crea una nueva instancia del controlador
func NewBookingController(service services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// CreatePaymentIntent maneja POST /api/hotels/:id/bookings/payment-intent
func (ctrl *BookingController) CreatePaymentIntent(c *gin.Context) {
	var req dto.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.CreatePaymentIntent(
		c.Request.Context(), c.Param("id"), authUserID(c), req.NumberOfNights)
	if err != nil {
		status, code := paymentErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateBooking maneja POST /api/hotels/:id/bookings. Devuelve 200 solo
// si la verificación del pago y el commit en el store salieron bien;
// cualquier rechazo vuelve con su razón específica.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	err := ctrl.service.CreateBooking(c.Request.Context(), c.Param("id"), authUserID(c), req)
	if err != nil {
		status, code := paymentErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Booking confirmed",
	})
}

// GetMyBookings maneja GET /api/my-bookings
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	hotels, err := ctrl.service.GetMyBookings(c.Request.Context(), authUserID(c))
	if err != nil {
		log.Printf("Error fetching bookings: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "fetch_error",
			Message: "Unable to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// paymentErrorStatus mapea los errores del flujo de reservas a un código
// HTTP y una razón. Todo lo no reconocido es un error interno.
func paymentErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrHotelNotFound):
		return http.StatusNotFound, "hotel_not_found"
	case errors.Is(err, services.ErrInvalidNights):
		return http.StatusBadRequest, "invalid_nights"
	case errors.Is(err, services.ErrInvalidStay):
		return http.StatusBadRequest, "invalid_stay"
	case errors.Is(err, services.ErrPaymentIntentNotFound):
		return http.StatusBadRequest, "payment_intent_not_found"
	case errors.Is(err, services.ErrPaymentIntentMismatch):
		return http.StatusBadRequest, "payment_intent_mismatch"
	case errors.Is(err, services.ErrPaymentIntentNotSucceeded):
		return http.StatusBadRequest, "payment_intent_not_succeeded"
	case errors.Is(err, services.ErrBookingAlreadyExists):
		return http.StatusConflict, "booking_already_exists"
	case errors.Is(err, services.ErrGatewayUnavailable):
		return http.StatusBadGateway, "gateway_unavailable"
	}
	log.Printf("Booking error: %v", err)
	return http.StatusInternalServerError, "internal_error"
}
