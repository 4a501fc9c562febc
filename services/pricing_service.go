package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jominr/hotel-booking-app/repositories"
)

// PricingService es la única fuente de verdad para el precio de una
// estadía. La tarifa por noche se relee siempre del hotel almacenado,
// nunca se confía en un valor enviado por el cliente.
type PricingService interface {
	TotalCost(ctx context.Context, hotelID string, numberOfNights int) (float64, error)
}

type pricingService struct {
	hotelRepo repositories.HotelRepository
}

// NewPricingService crea una nueva instancia de PricingService
func NewPricingService(hotelRepo repositories.HotelRepository) PricingService {
	return &pricingService{hotelRepo: hotelRepo}
}

// TotalCost calcula pricePerNight x numberOfNights con la tarifa actual
func (s *pricingService) TotalCost(ctx context.Context, hotelID string, numberOfNights int) (float64, error) {
	if numberOfNights <= 0 {
		return 0, ErrInvalidNights
	}

	hotel, err := s.hotelRepo.FindByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repositories.ErrHotelNotFound) {
			return 0, ErrHotelNotFound
		}
		return 0, fmt.Errorf("error fetching hotel for pricing: %w", err)
	}

	return hotel.PricePerNight * float64(numberOfNights), nil
}
