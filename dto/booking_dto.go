package dto

import "time"

// PaymentIntentRequest representa el request para cotizar una estadía
type PaymentIntentRequest struct {
	NumberOfNights int `json:"number_of_nights" binding:"required,min=1"`
}

// PaymentIntentResponse representa la cotización devuelta al cliente.
// El client_secret se usa para completar el pago contra Stripe desde el
// frontend; el total_cost es el precio calculado por el servidor.
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	TotalCost       float64 `json:"total_cost"`
}

// CreateBookingRequest representa el request para confirmar una reserva.
// No incluye montos: el costo final sale siempre del payment intent
// verificado contra la pasarela, nunca del cliente.
type CreateBookingRequest struct {
	PaymentIntentID string    `json:"payment_intent_id" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	AdultCount      int       `json:"adult_count" binding:"required,min=1"`
	ChildCount      int       `json:"child_count" binding:"min=0"`
}
