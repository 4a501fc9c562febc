package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/payments"
	"github.com/jominr/hotel-booking-app/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ============================================
// MOCKS compartidos por los tests del paquete
// ============================================

// mockHotelRepository guarda hoteles en memoria, indexados por el ID
// en hex que usan los servicios
type mockHotelRepository struct {
	hotels map[string]*domain.Hotel

	searchResults []domain.Hotel
	searchTotal   int64
	searchErr     error
	lastFilter    bson.M
	lastSort      bson.D
	lastSkip      int64
	lastLimit     int64
	searchCalls   int

	appendCalls int
}

func newMockHotelRepository() *mockHotelRepository {
	return &mockHotelRepository{
		hotels: make(map[string]*domain.Hotel),
	}
}

func (m *mockHotelRepository) addHotel(id string, hotel domain.Hotel) {
	m.hotels[id] = &hotel
}

func (m *mockHotelRepository) Search(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]domain.Hotel, int64, error) {
	m.searchCalls++
	m.lastFilter = filter
	m.lastSort = sort
	m.lastSkip = skip
	m.lastLimit = limit
	if m.searchErr != nil {
		return nil, 0, m.searchErr
	}
	return m.searchResults, m.searchTotal, nil
}

func (m *mockHotelRepository) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	hotels := make([]domain.Hotel, 0, len(m.hotels))
	for _, hotel := range m.hotels {
		hotels = append(hotels, *hotel)
	}
	return hotels, nil
}

func (m *mockHotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	hotel, exists := m.hotels[id]
	if !exists {
		return nil, repositories.ErrHotelNotFound
	}
	return hotel, nil
}

func (m *mockHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	hotel.ID = primitive.NewObjectID()
	m.hotels[hotel.ID.Hex()] = hotel
	return nil
}

func (m *mockHotelRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Hotel, error) {
	hotels := make([]domain.Hotel, 0)
	for _, hotel := range m.hotels {
		if hotel.OwnerID == ownerID {
			hotels = append(hotels, *hotel)
		}
	}
	return hotels, nil
}

func (m *mockHotelRepository) FindOwned(ctx context.Context, id, ownerID string) (*domain.Hotel, error) {
	hotel, exists := m.hotels[id]
	if !exists || hotel.OwnerID != ownerID {
		return nil, repositories.ErrHotelNotFound
	}
	return hotel, nil
}

func (m *mockHotelRepository) UpdateOwned(ctx context.Context, id, ownerID string, hotel *domain.Hotel) (*domain.Hotel, error) {
	existing, exists := m.hotels[id]
	if !exists || existing.OwnerID != ownerID {
		return nil, repositories.ErrHotelNotFound
	}
	updated := *hotel
	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.Bookings = existing.Bookings
	m.hotels[id] = &updated
	return &updated, nil
}

func (m *mockHotelRepository) AppendBooking(ctx context.Context, hotelID string, booking domain.Booking) error {
	hotel, exists := m.hotels[hotelID]
	if !exists {
		return repositories.ErrHotelNotFound
	}
	for _, existing := range hotel.Bookings {
		if existing.PaymentIntentID == booking.PaymentIntentID {
			return repositories.ErrDuplicateBooking
		}
	}
	hotel.Bookings = append(hotel.Bookings, booking)
	m.appendCalls++
	return nil
}

func (m *mockHotelRepository) FindBookedBy(ctx context.Context, userID string) ([]domain.Hotel, error) {
	hotels := make([]domain.Hotel, 0)
	for _, hotel := range m.hotels {
		for _, booking := range hotel.Bookings {
			if booking.UserID == userID {
				hotels = append(hotels, *hotel)
				break
			}
		}
	}
	return hotels, nil
}

// mockCacheRepository es un caché en memoria de un solo nivel
type mockCacheRepository struct {
	data map[string]cachedSearch
	sets int
}

type cachedSearch struct {
	hotels []domain.Hotel
	total  int64
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{
		data: make(map[string]cachedSearch),
	}
}

func (m *mockCacheRepository) Get(key string) ([]domain.Hotel, int64, bool) {
	entry, found := m.data[key]
	if !found {
		return nil, 0, false
	}
	return entry.hotels, entry.total, true
}

func (m *mockCacheRepository) Set(key string, hotels []domain.Hotel, total int64, ttl time.Duration) {
	m.sets++
	m.data[key] = cachedSearch{hotels: hotels, total: total}
}

func (m *mockCacheRepository) Delete(key string) {
	delete(m.data, key)
}

// mockPaymentGateway simula la pasarela de pagos en memoria
type mockPaymentGateway struct {
	intents      map[string]*payments.PaymentIntent
	createErr    error
	getErr       error
	lastAmount   int64
	lastCurrency string
	lastMetadata map[string]string
}

func newMockPaymentGateway() *mockPaymentGateway {
	return &mockPaymentGateway{
		intents: make(map[string]*payments.PaymentIntent),
	}
}

func (m *mockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*payments.PaymentIntent, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.lastAmount = amount
	m.lastCurrency = currency
	m.lastMetadata = metadata

	intent := &payments.PaymentIntent{
		ID:           fmt.Sprintf("pi_%d", len(m.intents)+1),
		ClientSecret: fmt.Sprintf("pi_%d_secret", len(m.intents)+1),
		Amount:       amount,
		Currency:     currency,
		Status:       "requires_payment_method",
		Metadata:     metadata,
	}
	m.intents[intent.ID] = intent
	return intent, nil
}

func (m *mockPaymentGateway) GetPaymentIntent(ctx context.Context, id string) (*payments.PaymentIntent, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	intent, exists := m.intents[id]
	if !exists {
		return nil, payments.ErrPaymentIntentNotFound
	}
	return intent, nil
}

// mockEventPublisher registra los eventos publicados
type mockEventPublisher struct {
	events []string
}

func newMockEventPublisher() *mockEventPublisher {
	return &mockEventPublisher{}
}

func (m *mockEventPublisher) PublishHotelEvent(action, hotelID string) error {
	m.events = append(m.events, action+":"+hotelID)
	return nil
}

func (m *mockEventPublisher) Close() error {
	return nil
}
