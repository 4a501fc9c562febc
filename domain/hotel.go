package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hotel representa un hotel publicado por su dueño.
// Es un único documento en MongoDB con las reservas embebidas.
type Hotel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       string             `bson:"owner_id" json:"owner_id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	City          string             `bson:"city" json:"city"`
	Country       string             `bson:"country" json:"country"`
	Type          string             `bson:"type" json:"type"`
	PricePerNight float64            `bson:"price_per_night" json:"price_per_night"`
	StarRating    int                `bson:"star_rating" json:"star_rating"`
	AdultCapacity int                `bson:"adult_capacity" json:"adult_capacity"`
	ChildCapacity int                `bson:"child_capacity" json:"child_capacity"`
	Facilities    []string           `bson:"facilities" json:"facilities"`
	ImageURLs     []string           `bson:"image_urls" json:"image_urls"`
	LastUpdated   time.Time          `bson:"last_updated" json:"last_updated"`
	Bookings      []Booking          `bson:"bookings" json:"bookings"`
}

// MaxImageURLs es la cantidad máxima de imágenes por hotel
const MaxImageURLs = 6

// Booking representa una reserva confirmada dentro de un hotel.
// Se agrega al array de bookings una sola vez por payment intent verificado
// y nunca se modifica ni se elimina.
type Booking struct {
	PaymentIntentID string    `bson:"payment_intent_id" json:"payment_intent_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	CheckIn         time.Time `bson:"check_in" json:"check_in"`
	CheckOut        time.Time `bson:"check_out" json:"check_out"`
	AdultCount      int       `bson:"adult_count" json:"adult_count"`
	ChildCount      int       `bson:"child_count" json:"child_count"`
	TotalCost       float64   `bson:"total_cost" json:"total_cost"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
