package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jominr/hotel-booking-app/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrHotelNotFound indica que el hotel no existe (o no pertenece al owner)
	ErrHotelNotFound = errors.New("hotel not found")
	// ErrDuplicateBooking indica que el hotel ya tiene una reserva con ese payment intent
	ErrDuplicateBooking = errors.New("booking already exists for payment intent")
)

// HotelRepository define la interfaz para operaciones sobre hoteles.
// Cada hotel es un único documento; AppendBooking es la única primitiva
// de escritura del flujo de reservas y es atómica por documento.
type HotelRepository interface {
	Search(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]domain.Hotel, int64, error)
	FindAll(ctx context.Context) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Hotel, error)
	FindOwned(ctx context.Context, id, ownerID string) (*domain.Hotel, error)
	UpdateOwned(ctx context.Context, id, ownerID string, hotel *domain.Hotel) (*domain.Hotel, error)
	AppendBooking(ctx context.Context, hotelID string, booking domain.Booking) error
	FindBookedBy(ctx context.Context, userID string) ([]domain.Hotel, error)
}

// hotelRepository implementa HotelRepository sobre MongoDB
type hotelRepository struct {
	collection *mongo.Collection
}

// NewHotelRepository crea una nueva instancia del repositorio
func NewHotelRepository(db *mongo.Database) HotelRepository {
	return &hotelRepository{
		collection: db.Collection("hotels"),
	}
}

// Search ejecuta el predicado construido por el query builder con orden y
// paginación, y devuelve también el total de documentos que matchean
// antes de paginar.
func (r *hotelRepository) Search(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]domain.Hotel, int64, error) {
	findOptions := options.Find().SetSkip(skip).SetLimit(limit)
	if len(sort) > 0 {
		findOptions.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := make([]domain.Hotel, 0)
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, 0, fmt.Errorf("error decoding hotels: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting hotels: %w", err)
	}

	return hotels, total, nil
}

// FindAll devuelve todos los hoteles ordenados por última actualización
func (r *hotelRepository) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "last_updated", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("error fetching hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := make([]domain.Hotel, 0)
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("error decoding hotels: %w", err)
	}
	return hotels, nil
}

// FindByID busca un hotel por su ID
func (r *hotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrHotelNotFound
	}

	var hotel domain.Hotel
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&hotel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("error fetching hotel: %w", err)
	}
	return &hotel, nil
}

// Create inserta un nuevo hotel
func (r *hotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	result, err := r.collection.InsertOne(ctx, hotel)
	if err != nil {
		return fmt.Errorf("error creating hotel: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		hotel.ID = oid
	}
	return nil
}

// FindByOwner devuelve los hoteles de un owner
func (r *hotelRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("error fetching hotels by owner: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := make([]domain.Hotel, 0)
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("error decoding hotels: %w", err)
	}
	return hotels, nil
}

// FindOwned busca un hotel por ID restringido al owner autenticado.
// Un hotel de otro owner es indistinguible de uno inexistente.
func (r *hotelRepository) FindOwned(ctx context.Context, id, ownerID string) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrHotelNotFound
	}

	var hotel domain.Hotel
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Decode(&hotel)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("error fetching hotel: %w", err)
	}
	return &hotel, nil
}

// UpdateOwned actualiza los datos del listado de un hotel del owner
// autenticado y devuelve el documento actualizado. El array de bookings
// no se toca nunca por este camino.
func (r *hotelRepository) UpdateOwned(ctx context.Context, id, ownerID string, hotel *domain.Hotel) (*domain.Hotel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrHotelNotFound
	}

	filter := bson.M{"_id": oid, "owner_id": ownerID}
	update := bson.M{"$set": bson.M{
		"name":            hotel.Name,
		"description":     hotel.Description,
		"city":            hotel.City,
		"country":         hotel.Country,
		"type":            hotel.Type,
		"price_per_night": hotel.PricePerNight,
		"star_rating":     hotel.StarRating,
		"adult_capacity":  hotel.AdultCapacity,
		"child_capacity":  hotel.ChildCapacity,
		"facilities":      hotel.Facilities,
		"image_urls":      hotel.ImageURLs,
		"last_updated":    hotel.LastUpdated,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Hotel
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("error updating hotel: %w", err)
	}
	return &updated, nil
}

// AppendBooking agrega una reserva al documento del hotel con un único
// update atómico. El filtro exige que no exista ya una reserva con el
// mismo payment intent: dos commits concurrentes del mismo intent no
// pueden insertar dos reservas.
func (r *hotelRepository) AppendBooking(ctx context.Context, hotelID string, booking domain.Booking) error {
	oid, err := primitive.ObjectIDFromHex(hotelID)
	if err != nil {
		return ErrHotelNotFound
	}

	filter := bson.M{
		"_id":                        oid,
		"bookings.payment_intent_id": bson.M{"$ne": booking.PaymentIntentID},
	}
	update := bson.M{"$push": bson.M{"bookings": booking}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error appending booking: %w", err)
	}

	if result.MatchedCount == 0 {
		// O el hotel no existe, o ya tiene una reserva con este intent
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("error checking hotel existence: %w", err)
		}
		if count == 0 {
			return ErrHotelNotFound
		}
		return ErrDuplicateBooking
	}

	return nil
}

// FindBookedBy devuelve los hoteles que contienen al menos una reserva
// del usuario dado
func (r *hotelRepository) FindBookedBy(ctx context.Context, userID string) ([]domain.Hotel, error) {
	filter := bson.M{
		"bookings": bson.M{"$elemMatch": bson.M{"user_id": userID}},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching booked hotels: %w", err)
	}
	defer cursor.Close(ctx)

	hotels := make([]domain.Hotel, 0)
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("error decoding hotels: %w", err)
	}
	return hotels, nil
}
