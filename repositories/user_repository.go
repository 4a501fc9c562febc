package repositories

import (
	"errors"

	"github.com/jominr/hotel-booking-app/domain"

	"gorm.io/gorm"
)

// ErrUserNotFound indica que el usuario no existe en la base de datos
var ErrUserNotFound = errors.New("user not found")

// UserRepository define la interfaz del repositorio de usuarios
type UserRepository interface {
	Create(user *domain.User) error
	GetByID(id uint) (*domain.User, error)
	GetByEmail(email string) (*domain.User, error)
}

// userRepository es la implementación sobre MySQL con GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository crea una nueva instancia del repositorio
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserta un nuevo usuario en la base de datos
func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

// GetByID busca un usuario por su ID
func (r *userRepository) GetByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail busca un usuario por su email. Se usa en el login.
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
