package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/services"

	"github.com/gin-gonic/gin"
)

// HotelController maneja los endpoints públicos de hoteles
type HotelController struct {
	hotelService  services.HotelService
	searchService services.SearchService
}

// NewHotelController crea una nueva instancia del controlador
func NewHotelController(hotelService services.HotelService, searchService services.SearchService) *HotelController {
	return &HotelController{
		hotelService:  hotelService,
		searchService: searchService,
	}
}

// Search maneja GET /api/hotels/search. Los filtros malformados se
// ignoran, nunca fallan el request: la búsqueda solo da error si el
// store no está disponible.
func (ctrl *HotelController) Search(c *gin.Context) {
	filters := services.ParseSearchFilters(c.Request.URL.Query())

	response, err := ctrl.searchService.Search(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error searching hotels: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "search_error",
			Message: "Something went wrong",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetHotels maneja GET /api/hotels
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.hotelService.GetAllHotels(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching hotels: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "fetch_error",
			Message: "Error fetching hotels",
		})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetHotelByID maneja GET /api/hotels/:id
func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	hotel, err := ctrl.hotelService.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "hotel_not_found",
				Message: err.Error(),
			})
			return
		}
		log.Printf("Error fetching hotel: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "fetch_error",
			Message: "Error fetching hotel",
		})
		return
	}

	c.JSON(http.StatusOK, hotel)
}
