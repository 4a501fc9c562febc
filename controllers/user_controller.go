package controllers

import (
	"net/http"
	"strconv"

	"github.com/jominr/hotel-booking-app/dto"
	"github.com/jominr/hotel-booking-app/services"

	"github.com/gin-gonic/gin"
)

// authUserID devuelve el user id autenticado del contexto como string.
// El middleware de auth lo dejó ahí ya verificado.
func authUserID(c *gin.Context) string {
	return strconv.FormatUint(uint64(c.GetUint("user_id")), 10)
}

// UserController maneja los endpoints HTTP de usuarios
type UserController struct {
	service services.UserService
}

// NewUserController crea una nueva instancia del controlador
func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// Register maneja POST /api/users/register
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.Register(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "register_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login maneja POST /api/users/login
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := ctrl.service.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "login_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Me maneja GET /api/users/me
func (ctrl *UserController) Me(c *gin.Context) {
	user, err := ctrl.service.GetUserByID(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "user_not_found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// HealthCheck maneja GET /health
func (ctrl *UserController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "hotel-booking-api",
	})
}
