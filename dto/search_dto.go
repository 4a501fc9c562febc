package dto

import "github.com/jominr/hotel-booking-app/domain"

// SearchFilters representa los filtros de búsqueda de hoteles ya tipados.
// Los campos con puntero distinguen "filtro ausente" de "valor cero";
// un filtro ausente no agrega ninguna restricción a la consulta.
type SearchFilters struct {
	Destination string
	AdultCount  *int
	ChildCount  *int
	Facilities  []string
	Types       []string
	Stars       []int
	MaxPrice    *float64
	SortOption  string
	Page        int
}

// Pagination describe la página devuelta y el total de resultados
// antes de paginar.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// SearchResponse representa la respuesta de una búsqueda de hoteles
type SearchResponse struct {
	Data       []domain.Hotel `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
