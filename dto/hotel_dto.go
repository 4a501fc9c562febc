package dto

// SaveHotelRequest representa el request para crear o actualizar un hotel.
// El owner nunca viene en el body: siempre sale del token autenticado.
type SaveHotelRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	City          string   `json:"city" binding:"required"`
	Country       string   `json:"country" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"required"`
	StarRating    int      `json:"star_rating" binding:"required,min=1,max=5"`
	AdultCapacity int      `json:"adult_capacity" binding:"required,min=1"`
	ChildCapacity int      `json:"child_capacity" binding:"min=0"`
	Facilities    []string `json:"facilities" binding:"required"`
	ImageURLs     []string `json:"image_urls" binding:"required,max=6"`
}
