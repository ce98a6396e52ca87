package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/annetv/item-sharing-backend/internal/api"
	"github.com/annetv/item-sharing-backend/internal/booking"
	bookingHttp "github.com/annetv/item-sharing-backend/internal/booking/http"
	"github.com/annetv/item-sharing-backend/internal/item"
	itemHttp "github.com/annetv/item-sharing-backend/internal/item/http"
	"github.com/annetv/item-sharing-backend/internal/request"
	requestHttp "github.com/annetv/item-sharing-backend/internal/request/http"
	"github.com/annetv/item-sharing-backend/internal/user"
	userHttp "github.com/annetv/item-sharing-backend/internal/user/http"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Booking storage comes first: the item module reads booking windows
	// through it.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Item module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	commentRepo := item.NewPgxCommentRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, commentRepo, userService, booking.NewItemReader(bookingRepo))

	// Booking module
	bookingService := booking.NewService(bookingRepo, itemService, userService, cfg.Logger)

	// Request module
	requestRepo := request.NewPgxRepository(cfg.DBPool)
	requestService := request.NewService(requestRepo, itemRepo, userService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserHandler:    userHttp.NewHandler(userService),
		ItemHandler:    itemHttp.NewHandler(itemService),
		BookingHandler: bookingHttp.NewHandler(bookingService),
		RequestHandler: requestHttp.NewHandler(requestService),
	})

	return &Container{Router: router}
}
