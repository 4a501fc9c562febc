package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jominr/hotel-booking-app/domain"
)

// Test: totalCost = pricePerNight x numberOfNights
func TestTotalCost_Computes(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{PricePerNight: 100})
	service := NewPricingService(repo)

	total, err := service.TotalCost(context.Background(), "hotel-1", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 300 {
		t.Errorf("Expected total 300, got %f", total)
	}
}

// Test: noches <= 0 se rechazan antes de tocar el store
func TestTotalCost_InvalidNights(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{PricePerNight: 100})
	service := NewPricingService(repo)

	for _, nights := range []int{0, -1} {
		if _, err := service.TotalCost(context.Background(), "hotel-1", nights); !errors.Is(err, ErrInvalidNights) {
			t.Errorf("nights=%d: expected ErrInvalidNights, got %v", nights, err)
		}
	}
}

// Test: hotel inexistente
func TestTotalCost_HotelNotFound(t *testing.T) {
	service := NewPricingService(newMockHotelRepository())

	if _, err := service.TotalCost(context.Background(), "missing", 2); !errors.Is(err, ErrHotelNotFound) {
		t.Errorf("Expected ErrHotelNotFound, got %v", err)
	}
}

// Test: la tarifa se relee en cada cotización, un cambio de precio
// impacta la siguiente
func TestTotalCost_RereadsCurrentRate(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{PricePerNight: 100})
	service := NewPricingService(repo)

	if total, _ := service.TotalCost(context.Background(), "hotel-1", 3); total != 300 {
		t.Errorf("Expected total 300 at the old rate, got %f", total)
	}

	repo.hotels["hotel-1"].PricePerNight = 120

	total, err := service.TotalCost(context.Background(), "hotel-1", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if total != 360 {
		t.Errorf("Expected total 360 at the new rate, got %f", total)
	}
}
