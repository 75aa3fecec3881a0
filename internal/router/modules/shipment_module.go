package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logitrack-io/logitrack/internal/container"
	handlers "github.com/logitrack-io/logitrack/internal/interface/http"
	"github.com/logitrack-io/logitrack/internal/interface/middleware"
	"github.com/logitrack-io/logitrack/pkg/helpers"
)

// ShipmentModule wires the owner-scoped shipment CRUD routes. Every
// route requires an authenticated session.
type ShipmentModule struct {
	Handler *handlers.ShipmentHandler
	JWT     *helpers.JWTManager
}

func NewShipmentModule(h *handlers.ShipmentHandler, jwt *helpers.JWTManager) *ShipmentModule {
	return &ShipmentModule{Handler: h, JWT: jwt}
}

func (m *ShipmentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		// Internal traffic skips the coarse per-IP cap but still counts
		// against the per-user window.
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/shipments", m.Handler.List)
		auth.GET("/shipments/search", m.Handler.Search)
		auth.GET("/shipments/:id", m.Handler.Get)
		auth.POST("/shipments", m.Handler.Create)
		auth.PUT("/shipments/:id", m.Handler.Update)
		auth.DELETE("/shipments/:id", m.Handler.Delete)
	}
}
