package services

import (
	"errors"

	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/repositories"
	"github.com/jominr/hotel-booking-app/utils"
)

// UserService define la interfaz del servicio de usuarios
type UserService interface {
	Register(req dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetUserByID(id uint) (*domain.User, error)
}

// userService es la implementación real del servicio
type userService struct {
	repo repositories.UserRepository
}

// NewUserService crea una nueva instancia del servicio
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register crea un nuevo usuario y lo deja logueado
func (s *userService) Register(req dto.RegisterRequest) (*dto.LoginResponse, error) {
	// 1. Verificar si el email ya existe
	existingUser, _ := s.repo.GetByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already exists")
	}

	// 2. Hashear la contraseña, nunca se guarda en texto plano
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("error hashing password")
	}

	user := &domain.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	// 3. Generar el token para que el registro deje la sesión iniciada
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.New("error generating token")
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

// Login autentica un usuario y genera un token JWT
func (s *userService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.GetByEmail(req.Email)
	// Por seguridad no se revela si el email existe o no
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.New("error generating token")
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

// GetUserByID obtiene un usuario por su ID
func (s *userService) GetUserByID(id uint) (*domain.User, error) {
	return s.repo.GetByID(id)
}
