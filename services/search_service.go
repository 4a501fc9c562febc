package services

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// searchPageSize es el tamaño de página fijo de las búsquedas
const searchPageSize = 5

const searchCacheTTL = 10 * time.Minute

// SearchService define la interfaz para la búsqueda de hoteles
type SearchService interface {
	Search(ctx context.Context, filters dto.SearchFilters) (*dto.SearchResponse, error)
}

// searchService implementa SearchService con caché de dos niveles
type searchService struct {
	hotelRepo repositories.HotelRepository
	cacheRepo repositories.CacheRepository
}

// NewSearchService crea una nueva instancia de SearchService
func NewSearchService(hotelRepo repositories.HotelRepository, cacheRepo repositories.CacheRepository) SearchService {
	return &searchService{
		hotelRepo: hotelRepo,
		cacheRepo: cacheRepo,
	}
}

// ParseSearchFilters convierte los query params crudos en filtros tipados.
// Un valor numérico malformado se ignora en lugar de fallar el request:
// la búsqueda nunca da error por filtros inválidos. Las claves no
// reconocidas se descartan.
func ParseSearchFilters(values url.Values) dto.SearchFilters {
	filters := dto.SearchFilters{
		Destination: values.Get("destination"),
		Facilities:  values["facilities"],
		Types:       values["types"],
		SortOption:  values.Get("sortOption"),
		Page:        1,
	}

	if v := values.Get("adultCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.AdultCount = &n
		}
	}
	if v := values.Get("childCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.ChildCount = &n
		}
	}
	for _, s := range values["stars"] {
		if n, err := strconv.Atoi(s); err == nil {
			filters.Stars = append(filters.Stars, n)
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxPrice = &n
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			filters.Page = n
		}
	}

	return filters
}

// buildSearchQuery traduce los filtros presentes al predicado de MongoDB.
// Un filtro ausente no agrega ninguna restricción.
func buildSearchQuery(filters dto.SearchFilters) bson.M {
	query := bson.M{}

	if filters.Destination != "" {
		// Substring sobre city o country, sin distinguir mayúsculas
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filters.Destination), Options: "i"}
		query["$or"] = []bson.M{
			{"city": pattern},
			{"country": pattern},
		}
	}
	if filters.AdultCount != nil {
		query["adult_capacity"] = bson.M{"$gte": *filters.AdultCount}
	}
	if filters.ChildCount != nil {
		query["child_capacity"] = bson.M{"$gte": *filters.ChildCount}
	}
	if len(filters.Facilities) > 0 {
		query["facilities"] = bson.M{"$all": filters.Facilities}
	}
	if len(filters.Types) > 0 {
		query["type"] = bson.M{"$in": filters.Types}
	}
	if len(filters.Stars) > 0 {
		query["star_rating"] = bson.M{"$in": filters.Stars}
	}
	if filters.MaxPrice != nil {
		query["price_per_night"] = bson.M{"$lte": *filters.MaxPrice}
	}

	return query
}

// resolveSortOption resuelve el criterio de orden. Una opción no
// reconocida deja el orden natural del store.
func resolveSortOption(option string) bson.D {
	switch option {
	case "starRating":
		return bson.D{{Key: "star_rating", Value: -1}}
	case "pricePerNightAsc":
		return bson.D{{Key: "price_per_night", Value: 1}}
	case "pricePerNightDesc":
		return bson.D{{Key: "price_per_night", Value: -1}}
	}
	return nil
}

// cacheKey genera la clave de caché a partir de los filtros
func (s *searchService) cacheKey(filters dto.SearchFilters) string {
	keyParts := []string{
		fmt.Sprintf("destination:%s", filters.Destination),
		fmt.Sprintf("adult_count:%v", intFilterValue(filters.AdultCount)),
		fmt.Sprintf("child_count:%v", intFilterValue(filters.ChildCount)),
		fmt.Sprintf("facilities:%s", strings.Join(filters.Facilities, ",")),
		fmt.Sprintf("types:%s", strings.Join(filters.Types, ",")),
		fmt.Sprintf("stars:%v", filters.Stars),
		fmt.Sprintf("max_price:%v", floatFilterValue(filters.MaxPrice)),
		fmt.Sprintf("sort:%s", filters.SortOption),
		fmt.Sprintf("page:%d", filters.Page),
	}

	keyString := strings.Join(keyParts, "|")
	hash := md5.Sum([]byte(keyString))
	return fmt.Sprintf("search:%x", hash)
}

func intFilterValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatFilterValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Search ejecuta la búsqueda con caché. El envelope siempre informa el
// total de resultados antes de paginar y pages = ceil(total/5), incluso
// con total cero.
func (s *searchService) Search(ctx context.Context, filters dto.SearchFilters) (*dto.SearchResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}

	key := s.cacheKey(filters)
	if hotels, total, found := s.cacheRepo.Get(key); found {
		return buildSearchResponse(hotels, total, filters.Page), nil
	}

	query := buildSearchQuery(filters)
	sort := resolveSortOption(filters.SortOption)
	skip := int64((filters.Page - 1) * searchPageSize)

	hotels, total, err := s.hotelRepo.Search(ctx, query, sort, skip, searchPageSize)
	if err != nil {
		return nil, fmt.Errorf("error searching hotels: %w", err)
	}

	s.cacheRepo.Set(key, hotels, total, searchCacheTTL)

	return buildSearchResponse(hotels, total, filters.Page), nil
}

// buildSearchResponse arma el envelope de respuesta con la paginación
func buildSearchResponse(hotels []domain.Hotel, total int64, page int) *dto.SearchResponse {
	if hotels == nil {
		hotels = make([]domain.Hotel, 0)
	}

	pages := int((total + searchPageSize - 1) / searchPageSize)

	return &dto.SearchResponse{
		Data: hotels,
		Pagination: dto.Pagination{
			Total: total,
			Page:  page,
			Pages: pages,
		},
	}
}
