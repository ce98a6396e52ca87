package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	bookingHttp "github.com/annetv/item-sharing-backend/internal/booking/http"
	"github.com/annetv/item-sharing-backend/internal/identity"
	itemHttp "github.com/annetv/item-sharing-backend/internal/item/http"
	requestHttp "github.com/annetv/item-sharing-backend/internal/request/http"
	userHttp "github.com/annetv/item-sharing-backend/internal/user/http"
)

// Config holds the handlers and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserHandler    *userHttp.Handler
	ItemHandler    *itemHttp.Handler
	BookingHandler *bookingHttp.Handler
	RequestHandler *requestHttp.Handler
}

// NewRouter initializes the HTTP router engine: middleware (CORS, logger,
// recovery) and route registration for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger prints request lines; Recovery turns panics into 500s.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.HeaderName}
	r.Use(cors.New(corsConfig))

	// identityMiddleware extracts the gateway-provided caller id.
	identityMiddleware := identity.Required()

	userHttp.RegisterRoutes(&r.RouterGroup, cfg.UserHandler)
	itemHttp.RegisterRoutes(&r.RouterGroup, cfg.ItemHandler, identityMiddleware)
	bookingHttp.RegisterRoutes(&r.RouterGroup, cfg.BookingHandler, identityMiddleware)
	requestHttp.RegisterRoutes(&r.RouterGroup, cfg.RequestHandler, identityMiddleware)

	return r
}
