package repositories

import (
	"encoding/json"
	"log"
	"time"

	"github.com/jominr/hotel-booking-app/domain"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// CacheRepository define la interfaz para el caché de resultados de búsqueda
type CacheRepository interface {
	Get(key string) ([]domain.Hotel, int64, bool)
	Set(key string, hotels []domain.Hotel, total int64, ttl time.Duration)
	Delete(key string)
}

// cacheData representa los datos almacenados en caché
type cacheData struct {
	Hotels []domain.Hotel `json:"hotels"`
	Total  int64          `json:"total"`
}

// cacheRepository implementa CacheRepository con dos niveles:
// ccache local en memoria y Memcached compartido.
type cacheRepository struct {
	localCache      *ccache.Cache[*cacheData]
	memcachedClient *memcache.Client
}

const localCacheTTL = 5 * time.Minute

// NewCacheRepository crea una nueva instancia de CacheRepository
func NewCacheRepository(memcachedHost string) CacheRepository {
	localCache := ccache.New(ccache.Configure[*cacheData]().MaxSize(1000))
	memcachedClient := memcache.New(memcachedHost)

	log.Printf("Cache repository initialized with Memcached at %s", memcachedHost)

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
	}
}

// Get obtiene datos del caché (primero local, luego Memcached).
// Cualquier error de caché se trata como un miss: la búsqueda nunca
// falla por problemas de caché.
func (r *cacheRepository) Get(key string) ([]domain.Hotel, int64, bool) {
	// 1. Buscar en caché local primero
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		data := item.Value()
		return data.Hotels, data.Total, true
	}

	// 2. Si no está en local, buscar en Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			log.Printf("Error getting from Memcached: key=%s, error=%v", key, err)
		}
		return nil, 0, false
	}

	var data cacheData
	if err := json.Unmarshal(memcachedItem.Value, &data); err != nil {
		log.Printf("Error unmarshaling cache data from Memcached: key=%s, error=%v", key, err)
		return nil, 0, false
	}

	// 3. Guardar en caché local para próximas consultas
	r.localCache.Set(key, &data, localCacheTTL)

	return data.Hotels, data.Total, true
}

// Set guarda datos en ambos niveles de caché
func (r *cacheRepository) Set(key string, hotels []domain.Hotel, total int64, ttl time.Duration) {
	data := &cacheData{
		Hotels: hotels,
		Total:  total,
	}

	r.localCache.Set(key, data, localCacheTTL)

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling cache data for Memcached: key=%s, error=%v", key, err)
		return
	}

	memcachedItem := &memcache.Item{
		Key:        key,
		Value:      jsonData,
		Expiration: int32(ttl / time.Second),
	}

	if err := r.memcachedClient.Set(memcachedItem); err != nil {
		log.Printf("Error setting cache in Memcached: key=%s, error=%v", key, err)
	}
}

// Delete elimina datos de ambos niveles de caché
func (r *cacheRepository) Delete(key string) {
	r.localCache.Delete(key)

	if err := r.memcachedClient.Delete(key); err != nil && err != memcache.ErrCacheMiss {
		log.Printf("Error deleting from Memcached: key=%s, error=%v", key, err)
	}
}
