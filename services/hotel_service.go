package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/publishers"
	"github.com/jominr/hotel-booking-app/repositories"
)

// HotelService maneja los listados de hoteles. Las operaciones "my"
// están siempre acotadas al owner autenticado: el owner id sale del
// token, nunca de un filtro del cliente, así que un owner no puede leer
// ni modificar hoteles ajenos por este camino.
type HotelService interface {
	CreateHotel(ctx context.Context, ownerID string, req dto.SaveHotelRequest) (*domain.Hotel, error)
	UpdateHotel(ctx context.Context, ownerID, hotelID string, req dto.SaveHotelRequest) (*domain.Hotel, error)
	GetMyHotels(ctx context.Context, ownerID string) ([]domain.Hotel, error)
	GetMyHotel(ctx context.Context, ownerID, hotelID string) (*domain.Hotel, error)
	GetAllHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, hotelID string) (*domain.Hotel, error)
}

type hotelService struct {
	hotelRepo repositories.HotelRepository
	publisher publishers.EventPublisher
}

// NewHotelService crea una nueva instancia de HotelService
func NewHotelService(hotelRepo repositories.HotelRepository, publisher publishers.EventPublisher) HotelService {
	return &hotelService{
		hotelRepo: hotelRepo,
		publisher: publisher,
	}
}

// validateHotelRequest valida las invariantes del listado
func validateHotelRequest(req dto.SaveHotelRequest) error {
	if req.PricePerNight <= 0 {
		return ErrInvalidPrice
	}
	if req.StarRating < 1 || req.StarRating > 5 {
		return ErrInvalidStarRating
	}
	if len(req.ImageURLs) > domain.MaxImageURLs {
		return ErrTooManyImages
	}
	return nil
}

// CreateHotel crea un hotel para el owner autenticado
func (s *hotelService) CreateHotel(ctx context.Context, ownerID string, req dto.SaveHotelRequest) (*domain.Hotel, error) {
	if err := validateHotelRequest(req); err != nil {
		return nil, err
	}

	hotel := &domain.Hotel{
		OwnerID:       ownerID,
		Name:          req.Name,
		Description:   req.Description,
		City:          req.City,
		Country:       req.Country,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		StarRating:    req.StarRating,
		AdultCapacity: req.AdultCapacity,
		ChildCapacity: req.ChildCapacity,
		Facilities:    req.Facilities,
		ImageURLs:     req.ImageURLs,
		LastUpdated:   time.Now().UTC(),
		Bookings:      make([]domain.Booking, 0),
	}

	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("error creating hotel: %w", err)
	}

	if err := s.publisher.PublishHotelEvent("create", hotel.ID.Hex()); err != nil {
		log.Printf("Error publishing hotel event: hotel_id=%s error=%v", hotel.ID.Hex(), err)
	}

	return hotel, nil
}

// UpdateHotel actualiza un hotel del owner autenticado. Un hotel ajeno
// se reporta como inexistente.
func (s *hotelService) UpdateHotel(ctx context.Context, ownerID, hotelID string, req dto.SaveHotelRequest) (*domain.Hotel, error) {
	if err := validateHotelRequest(req); err != nil {
		return nil, err
	}

	hotel := &domain.Hotel{
		Name:          req.Name,
		Description:   req.Description,
		City:          req.City,
		Country:       req.Country,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		StarRating:    req.StarRating,
		AdultCapacity: req.AdultCapacity,
		ChildCapacity: req.ChildCapacity,
		Facilities:    req.Facilities,
		ImageURLs:     req.ImageURLs,
		LastUpdated:   time.Now().UTC(),
	}

	updated, err := s.hotelRepo.UpdateOwned(ctx, hotelID, ownerID, hotel)
	if err != nil {
		if errors.Is(err, repositories.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("error updating hotel: %w", err)
	}

	if err := s.publisher.PublishHotelEvent("update", hotelID); err != nil {
		log.Printf("Error publishing hotel event: hotel_id=%s error=%v", hotelID, err)
	}

	return updated, nil
}

// GetMyHotels devuelve los hoteles del owner autenticado
func (s *hotelService) GetMyHotels(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	return s.hotelRepo.FindByOwner(ctx, ownerID)
}

// GetMyHotel devuelve un hotel del owner autenticado
func (s *hotelService) GetMyHotel(ctx context.Context, ownerID, hotelID string) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.FindOwned(ctx, hotelID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

// GetAllHotels devuelve todos los hoteles, los más recientes primero
func (s *hotelService) GetAllHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotelRepo.FindAll(ctx)
}

// GetHotel devuelve un hotel por ID, visible para cualquiera
func (s *hotelService) GetHotel(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.FindByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repositories.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}
