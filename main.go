package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jominr/hotel-booking-app/config"
	"github.com/jominr/hotel-booking-app/controllers"
	"github.com/jominr/hotel-booking-app/domain"
	"github.com/jominr/hotel-booking-app/middleware"
	"github.com/jominr/hotel-booking-app/payments"
	"github.com/jominr/hotel-booking-app/publishers"
	"github.com/jominr/hotel-booking-app/repositories"
	"github.com/jominr/hotel-booking-app/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting Hotel Booking API...")

	// a. Cargar configuración
	cfg := config.LoadConfig()
	log.Printf("Configuration loaded: Port=%s, MongoDB=%s, MemcachedHost=%s",
		cfg.Port, cfg.MongoDatabase, cfg.MemcachedHost)

	// b. Conectar a MySQL (usuarios)
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("Connecting to MySQL...")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("MySQL connected")

	// c. Conectar a MongoDB (hoteles y reservas)
	log.Println("Connecting to MongoDB...")
	mongoCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	cancel()
	mongoDB := mongoClient.Database(cfg.MongoDatabase)
	log.Println("MongoDB connected")

	// d. Inicializar repositorios
	userRepo := repositories.NewUserRepository(db)
	hotelRepo := repositories.NewHotelRepository(mongoDB)
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)

	// e. Publisher de eventos de hoteles
	publisher, err := publishers.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.HotelEventsQueue)
	if err != nil {
		log.Fatalf("Failed to create RabbitMQ publisher: %v", err)
	}

	// f. Pasarela de pagos
	gateway := payments.NewStripeGateway(cfg.StripeAPIKey)

	// g. Inicializar servicios
	userService := services.NewUserService(userRepo)
	searchService := services.NewSearchService(hotelRepo, cacheRepo)
	hotelService := services.NewHotelService(hotelRepo, publisher)
	pricingService := services.NewPricingService(hotelRepo)
	bookingService := services.NewBookingService(hotelRepo, pricingService, gateway, publisher, cfg.Currency)

	// h. Inicializar controladores
	userController := controllers.NewUserController(userService)
	hotelController := controllers.NewHotelController(hotelService, searchService)
	myHotelController := controllers.NewMyHotelController(hotelService)
	bookingController := controllers.NewBookingController(bookingService)

	// i. Configurar Gin
	router := gin.Default()

	// CORS - Permitir requests desde el frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// j. Definir rutas
	router.GET("/health", userController.HealthCheck)

	api := router.Group("/api")
	{
		// Rutas públicas
		api.POST("/users/register", userController.Register)
		api.POST("/users/login", userController.Login)
		api.GET("/hotels", hotelController.GetHotels)
		api.GET("/hotels/search", hotelController.Search)
		api.GET("/hotels/:id", hotelController.GetHotelByID)

		// Rutas protegidas (requieren JWT)
		auth := api.Group("")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.GET("/users/me", userController.Me)
			auth.POST("/hotels/:id/bookings/payment-intent", bookingController.CreatePaymentIntent)
			auth.POST("/hotels/:id/bookings", bookingController.CreateBooking)
			auth.GET("/my-bookings", bookingController.GetMyBookings)
			auth.GET("/my-hotels", myHotelController.GetMyHotels)
			auth.POST("/my-hotels", myHotelController.CreateHotel)
			auth.GET("/my-hotels/:id", myHotelController.GetMyHotelByID)
			auth.PUT("/my-hotels/:id", myHotelController.UpdateHotel)
		}
	}

	// k. Arrancar el servidor HTTP en una goroutine
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Hotel Booking API running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// l. Graceful shutdown con signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Hotel Booking API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Printf("Error closing RabbitMQ publisher: %v", err)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting MongoDB: %v", err)
	}

	log.Println("Hotel Booking API shut down complete")
}
