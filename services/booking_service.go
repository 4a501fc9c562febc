package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/payments"
	"github.com/jominr/hotel-booking-app/publishers"
	"github.com/jominr/hotel-booking-app/repositories"
)

// Claves de metadata del payment intent. Atan la autorización al hotel
// y al usuario para los que se emitió.
const (
	metadataHotelID = "hotel_id"
	metadataUserID  = "user_id"
)

// BookingService maneja la cotización y la confirmación de reservas.
// La confirmación nunca confía en datos del cliente: relee el payment
// intent desde la pasarela, verifica metadata y estado, y recién ahí
// agrega la reserva al hotel con un único update atómico.
type BookingService interface {
	CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*dto.PaymentIntentResponse, error)
	CreateBooking(ctx context.Context, hotelID, userID string, req dto.CreateBookingRequest) error
	GetMyBookings(ctx context.Context, userID string) ([]domain.Hotel, error)
}

type bookingService struct {
	hotelRepo repositories.HotelRepository
	pricing   PricingService
	gateway   payments.PaymentGateway
	publisher publishers.EventPublisher
	currency  string
}

// NewBookingService crea una nueva instancia de BookingService
func NewBookingService(
	hotelRepo repositories.HotelRepository,
	pricing PricingService,
	gateway payments.PaymentGateway,
	publisher publishers.EventPublisher,
	currency string,
) BookingService {
	return &bookingService{
		hotelRepo: hotelRepo,
		pricing:   pricing,
		gateway:   gateway,
		publisher: publisher,
		currency:  currency,
	}
}

// CreatePaymentIntent cotiza la estadía con la tarifa actual del hotel y
// crea la autorización de pago en la pasarela, atada a {hotel, usuario}.
func (s *bookingService) CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*dto.PaymentIntentResponse, error) {
	totalCost, err := s.pricing.TotalCost(ctx, hotelID, numberOfNights)
	if err != nil {
		return nil, err
	}

	// La pasarela trabaja en unidades menores (centavos)
	amount := int64(math.Round(totalCost * 100))

	metadata := map[string]string{
		metadataHotelID: hotelID,
		metadataUserID:  userID,
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amount, s.currency, metadata)
	if err != nil {
		if errors.Is(err, payments.ErrGatewayUnavailable) {
			return nil, ErrGatewayUnavailable
		}
		return nil, fmt.Errorf("error creating payment intent: %w", err)
	}

	log.Printf("Payment intent created: id=%s hotel_id=%s user_id=%s amount=%d", intent.ID, hotelID, userID, amount)

	return &dto.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

// CreateBooking confirma una reserva a partir de un payment intent ya
// pagado. Las verificaciones van en orden: existencia, metadata y estado.
// Un mismatch de metadata es un rechazo duro (referencia ajena o
// replayada), no un error reintentable.
func (s *bookingService) CreateBooking(ctx context.Context, hotelID, userID string, req dto.CreateBookingRequest) error {
	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidStay
	}

	// 1. Releer la autorización desde la pasarela
	intent, err := s.gateway.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, payments.ErrPaymentIntentNotFound) {
			return ErrPaymentIntentNotFound
		}
		if errors.Is(err, payments.ErrGatewayUnavailable) {
			return ErrGatewayUnavailable
		}
		return fmt.Errorf("error fetching payment intent: %w", err)
	}

	// 2. La autorización tiene que haberse emitido para este hotel y este usuario
	if intent.Metadata[metadataHotelID] != hotelID || intent.Metadata[metadataUserID] != userID {
		log.Printf("Payment intent mismatch: id=%s hotel_id=%s user_id=%s metadata=%v",
			intent.ID, hotelID, userID, intent.Metadata)
		return ErrPaymentIntentMismatch
	}

	// 3. El pago tiene que estar completado
	if intent.Status != payments.StatusSucceeded {
		return fmt.Errorf("%w: status=%s", ErrPaymentIntentNotSucceeded, intent.Status)
	}

	// 4. El costo guardado es el monto verificado de la autorización
	booking := domain.Booking{
		PaymentIntentID: intent.ID,
		UserID:          userID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		AdultCount:      req.AdultCount,
		ChildCount:      req.ChildCount,
		TotalCost:       float64(intent.Amount) / 100,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.hotelRepo.AppendBooking(ctx, hotelID, booking); err != nil {
		switch {
		case errors.Is(err, repositories.ErrHotelNotFound):
			// El pago quedó capturado sin reserva: hay que conciliarlo a mano
			log.Printf("Orphaned payment capture: payment_intent_id=%s hotel_id=%s user_id=%s amount=%d",
				intent.ID, hotelID, userID, intent.Amount)
			return ErrHotelNotFound
		case errors.Is(err, repositories.ErrDuplicateBooking):
			return ErrBookingAlreadyExists
		default:
			return fmt.Errorf("error committing booking: %w", err)
		}
	}

	log.Printf("Booking committed: hotel_id=%s user_id=%s payment_intent_id=%s total_cost=%.2f",
		hotelID, userID, intent.ID, booking.TotalCost)

	if err := s.publisher.PublishHotelEvent("update", hotelID); err != nil {
		log.Printf("Error publishing hotel event after booking: hotel_id=%s error=%v", hotelID, err)
	}

	return nil
}

// GetMyBookings devuelve los hoteles donde el usuario tiene reservas,
// cada uno con solo las reservas de ese usuario
func (s *bookingService) GetMyBookings(ctx context.Context, userID string) ([]domain.Hotel, error) {
	hotels, err := s.hotelRepo.FindBookedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}

	for i := range hotels {
		userBookings := make([]domain.Booking, 0, len(hotels[i].Bookings))
		for _, booking := range hotels[i].Bookings {
			if booking.UserID == userID {
				userBookings = append(userBookings, booking)
			}
		}
		hotels[i].Bookings = userBookings
	}

	return hotels, nil
}
