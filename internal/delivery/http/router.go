package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pizzeria-backend/internal/delivery/http/handler"
)

type Handlers struct {
	Orders    *handler.OrderHandler
	Menu      *handler.MenuHandler
	Customers *handler.CustomerHandler
	Settings  *handler.SettingsHandler
	Specials  *handler.SpecialHandler
	Analytics *handler.AnalyticsHandler
	Cart      *handler.CartHandler
}

// NewRouter wires the storefront and admin API surfaces. Admin auth is
// handled upstream; these routes carry no auth middleware.
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: true,
	}
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/menu", h.Menu.ListPublic)
		api.GET("/menu/categories", h.Menu.Categories)
		api.GET("/pricing", h.Settings.Pricing)
		api.POST("/cart/quote", h.Cart.Quote)
		api.POST("/orders", h.Orders.Create)
		api.GET("/orders/:id", h.Orders.Get)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/orders", h.Orders.List)
		admin.GET("/orders/export", h.Orders.Export)
		admin.GET("/orders/:id", h.Orders.Get)
		admin.PATCH("/orders/:id", h.Orders.Update)

		admin.GET("/menu", h.Menu.List)
		admin.POST("/menu", h.Menu.Create)
		admin.GET("/menu/:id", h.Menu.Get)
		admin.PUT("/menu/:id", h.Menu.Update)
		admin.DELETE("/menu/:id", h.Menu.Delete)

		admin.GET("/customers", h.Customers.List)
		admin.POST("/customers", h.Customers.Create)
		admin.GET("/customers/:id", h.Customers.Get)
		admin.PUT("/customers/:id", h.Customers.Update)
		admin.DELETE("/customers/:id", h.Customers.Delete)

		admin.GET("/settings", h.Settings.Get)
		admin.PUT("/settings", h.Settings.Update)

		admin.GET("/specials", h.Specials.List)
		admin.POST("/specials", h.Specials.Create)
		admin.PUT("/specials/:id", h.Specials.Update)
		admin.DELETE("/specials/:id", h.Specials.Delete)

		admin.GET("/analytics", h.Analytics.Overview)
		admin.GET("/dashboard", h.Analytics.Dashboard)
	}

	return router
}
