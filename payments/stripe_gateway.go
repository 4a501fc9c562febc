package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var (
	// ErrPaymentIntentNotFound indica que la pasarela no conoce ese payment intent
	ErrPaymentIntentNotFound = errors.New("payment intent not found")
	// ErrGatewayUnavailable indica un error transitorio de la pasarela;
	// el caller puede reintentar.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// StatusSucceeded es el único estado de payment intent que habilita una reserva
const StatusSucceeded = "succeeded"

// PaymentIntent es la vista de la autorización de pago que maneja el core.
// El monto está en unidades menores (centavos) como lo devuelve la pasarela.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
	Metadata     map[string]string
}

// PaymentGateway define el contrato con la pasarela de pagos. El core
// solo crea intents y los relee por ID: nunca confía en montos ni
// estados provistos por el cliente.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// stripeGateway implementa PaymentGateway sobre Stripe
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway crea una nueva instancia de la pasarela con la API key dada
func NewStripeGateway(apiKey string) PaymentGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &stripeGateway{api: api}
}

// CreatePaymentIntent crea una autorización de pago en Stripe con la
// metadata que después se verifica en el commit de la reserva
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	return mapPaymentIntent(intent), nil
}

// GetPaymentIntent relee una autorización de pago desde Stripe por su ID
func (g *stripeGateway) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}

	intent, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, ErrPaymentIntentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	return mapPaymentIntent(intent), nil
}

// mapPaymentIntent convierte el objeto de Stripe a la vista del core
func mapPaymentIntent(intent *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
		Metadata:     intent.Metadata,
	}
}
