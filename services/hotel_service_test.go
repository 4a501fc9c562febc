package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/dto"
)

func validHotelRequest() dto.SaveHotelRequest {
	return dto.SaveHotelRequest{
		Name:          "Seaside Inn",
		Description:   "Close to the beach",
		City:          "Melbourne",
		Country:       "Australia",
		Type:          "Hotel",
		PricePerNight: 100,
		StarRating:    4,
		AdultCapacity: 2,
		ChildCapacity: 1,
		Facilities:    []string{"wifi", "parking"},
		ImageURLs:     []string{"https://example.com/1.jpg"},
	}
}

// Test: crear un hotel fija owner, last_updated y reservas vacías
func TestCreateHotel_SetsOwnerAndDefaults(t *testing.T) {
	repo := newMockHotelRepository()
	publisher := newMockEventPublisher()
	service := NewHotelService(repo, publisher)

	hotel, err := service.CreateHotel(context.Background(), "7", validHotelRequest())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hotel.OwnerID != "7" {
		t.Errorf("Expected owner 7, got %s", hotel.OwnerID)
	}
	if hotel.ID.IsZero() {
		t.Error("Expected an assigned ID")
	}
	if hotel.LastUpdated.IsZero() {
		t.Error("Expected last_updated to be set")
	}
	if hotel.Bookings == nil || len(hotel.Bookings) != 0 {
		t.Errorf("Expected empty bookings list, got %v", hotel.Bookings)
	}
	if len(publisher.events) != 1 || !strings.HasPrefix(publisher.events[0], "create:") {
		t.Errorf("Expected one create event, got %v", publisher.events)
	}
}

// Test: validaciones del listado
func TestCreateHotel_Validations(t *testing.T) {
	repo := newMockHotelRepository()
	service := NewHotelService(repo, newMockEventPublisher())

	badPrice := validHotelRequest()
	badPrice.PricePerNight = 0
	if _, err := service.CreateHotel(context.Background(), "7", badPrice); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("Expected ErrInvalidPrice, got %v", err)
	}

	badStars := validHotelRequest()
	badStars.StarRating = 6
	if _, err := service.CreateHotel(context.Background(), "7", badStars); !errors.Is(err, ErrInvalidStarRating) {
		t.Errorf("Expected ErrInvalidStarRating, got %v", err)
	}

	tooManyImages := validHotelRequest()
	tooManyImages.ImageURLs = make([]string, domain.MaxImageURLs+1)
	if _, err := service.CreateHotel(context.Background(), "7", tooManyImages); !errors.Is(err, ErrTooManyImages) {
		t.Errorf("Expected ErrTooManyImages, got %v", err)
	}

	if len(repo.hotels) != 0 {
		t.Errorf("Expected no hotels created, got %d", len(repo.hotels))
	}
}

// Test: un hotel ajeno se lee como inexistente
func TestGetMyHotel_OtherOwnerLooksNotFound(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{Name: "Mine", OwnerID: "7"})
	service := NewHotelService(repo, newMockEventPublisher())

	if _, err := service.GetMyHotel(context.Background(), "8", "hotel-1"); !errors.Is(err, ErrHotelNotFound) {
		t.Errorf("Expected ErrHotelNotFound for another owner, got %v", err)
	}

	hotel, err := service.GetMyHotel(context.Background(), "7", "hotel-1")
	if err != nil {
		t.Fatalf("Expected the real owner to read it, got %v", err)
	}
	if hotel.Name != "Mine" {
		t.Errorf("Unexpected hotel: %v", hotel)
	}
}

// Test: mis hoteles solo trae los del owner
func TestGetMyHotels_ScopedToOwner(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{Name: "Mine", OwnerID: "7"})
	repo.addHotel("hotel-2", domain.Hotel{Name: "Theirs", OwnerID: "8"})
	service := NewHotelService(repo, newMockEventPublisher())

	hotels, err := service.GetMyHotels(context.Background(), "7")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(hotels) != 1 || hotels[0].Name != "Mine" {
		t.Errorf("Expected only the owner's hotels, got %v", hotels)
	}
}

// Test: actualizar un hotel ajeno falla, el propio preserva reservas
func TestUpdateHotel_ScopedToOwner(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{
		Name:    "Old Name",
		OwnerID: "7",
		Bookings: []domain.Booking{
			{PaymentIntentID: "pi_keep", UserID: "9", TotalCost: 300},
		},
	})
	publisher := newMockEventPublisher()
	service := NewHotelService(repo, publisher)

	req := validHotelRequest()
	req.Name = "New Name"

	if _, err := service.UpdateHotel(context.Background(), "8", "hotel-1", req); !errors.Is(err, ErrHotelNotFound) {
		t.Errorf("Expected ErrHotelNotFound for another owner, got %v", err)
	}

	updated, err := service.UpdateHotel(context.Background(), "7", "hotel-1", req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("Expected updated name, got %s", updated.Name)
	}
	if updated.OwnerID != "7" {
		t.Errorf("Expected owner preserved, got %s", updated.OwnerID)
	}
	if len(updated.Bookings) != 1 || updated.Bookings[0].PaymentIntentID != "pi_keep" {
		t.Errorf("Expected bookings preserved across the update, got %v", updated.Bookings)
	}
	if len(publisher.events) != 1 || publisher.events[0] != "update:hotel-1" {
		t.Errorf("Expected one update event, got %v", publisher.events)
	}
}

// Test: lecturas públicas
func TestGetHotel_Public(t *testing.T) {
	repo := newMockHotelRepository()
	repo.addHotel("hotel-1", domain.Hotel{Name: "Visible", OwnerID: "7"})
	service := NewHotelService(repo, newMockEventPublisher())

	hotel, err := service.GetHotel(context.Background(), "hotel-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hotel.Name != "Visible" {
		t.Errorf("Unexpected hotel: %v", hotel)
	}

	if _, err := service.GetHotel(context.Background(), "missing"); !errors.Is(err, ErrHotelNotFound) {
		t.Errorf("Expected ErrHotelNotFound, got %v", err)
	}
}
