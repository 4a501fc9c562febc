package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/services"

	"github.com/gin-gonic/gin"
)

// MyHotelController maneja los endpoints de hoteles del owner autenticado
type MyHotelController struct {
	service services.HotelService
}

// NewMyHotelController crea una nueva instancia del controlador
func NewMyHotelController(service services.HotelService) *MyHotelController {
	return &MyHotelController{service: service}
}

// CreateHotel maneja POST /api/my-hotels
func (ctrl *MyHotelController) CreateHotel(c *gin.Context) {
	var req dto.SaveHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	hotel, err := ctrl.service.CreateHotel(c.Request.Context(), authUserID(c), req)
	if err != nil {
		status, code := hotelErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel maneja PUT /api/my-hotels/:id
func (ctrl *MyHotelController) UpdateHotel(c *gin.Context) {
	var req dto.SaveHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	hotel, err := ctrl.service.UpdateHotel(c.Request.Context(), authUserID(c), c.Param("id"), req)
	if err != nil {
		status, code := hotelErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// GetMyHotels maneja GET /api/my-hotels
func (ctrl *MyHotelController) GetMyHotels(c *gin.Context) {
	hotels, err := ctrl.service.GetMyHotels(c.Request.Context(), authUserID(c))
	if err != nil {
		log.Printf("Error fetching my hotels: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "fetch_error",
			Message: "Error fetching hotels",
		})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetMyHotelByID maneja GET /api/my-hotels/:id
func (ctrl *MyHotelController) GetMyHotelByID(c *gin.Context) {
	hotel, err := ctrl.service.GetMyHotel(c.Request.Context(), authUserID(c), c.Param("id"))
	if err != nil {
		status, code := hotelErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// hotelErrorStatus mapea los errores de listados a un código HTTP
func hotelErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrHotelNotFound):
		return http.StatusNotFound, "hotel_not_found"
	case errors.Is(err, services.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid_price"
	case errors.Is(err, services.ErrInvalidStarRating):
		return http.StatusBadRequest, "invalid_star_rating"
	case errors.Is(err, services.ErrTooManyImages):
		return http.StatusBadRequest, "too_many_images"
	}
	log.Printf("Hotel error: %v", err)
	return http.StatusInternalServerError, "internal_error"
}
