package services

import "errors"

// Errores del flujo de reservas y de los listados. Los controllers los
// mapean a códigos HTTP con errors.Is; el resto de los errores se trata
// como interno.
var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrInvalidNights = errors.New("number of nights must be positive")
	ErrInvalidStay   = errors.New("check-in must be before check-out")

	ErrPaymentIntentNotFound     = errors.New("payment intent not found")
	ErrPaymentIntentMismatch     = errors.New("payment intent mismatch")
	ErrPaymentIntentNotSucceeded = errors.New("payment intent not succeeded")
	ErrBookingAlreadyExists      = errors.New("booking already exists for payment intent")
	ErrGatewayUnavailable        = errors.New("payment gateway unavailable")

	ErrInvalidPrice      = errors.New("price per night must be positive")
	ErrInvalidStarRating = errors.New("star rating must be between 1 and 5")
	ErrTooManyImages     = errors.New("a hotel cannot have more than 6 images")
)
