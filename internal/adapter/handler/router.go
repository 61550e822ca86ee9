package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	authMiddleware "github.com/johnquangdev/event-planner/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/event-planner/pkg/config"
	"github.com/johnquangdev/event-planner/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	auth         authMiddleware.TokenValidator
	events       middleware.EventLoader
	eventHandler *Event
	guestHandler *Guest
	bulkHandler  *Bulk
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	auth authMiddleware.TokenValidator,
	events middleware.EventLoader,
	eventHandler *Event,
	guestHandler *Guest,
	bulkHandler *Bulk,
) *Router {
	return &Router{
		cfg:          cfg,
		auth:         auth,
		events:       events,
		eventHandler: eventHandler,
		guestHandler: guestHandler,
		bulkHandler:  bulkHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1", authMiddleware.EchoAuth(rt.auth))

	rt.setupEventRoutes(v1)
	rt.setupGuestRoutes(v1)
}

// setupEventRoutes configures event management routes
func (rt *Router) setupEventRoutes(g *echo.Group) {
	events := g.Group("/events")

	events.POST("", rt.eventHandler.CreateEvent)
	events.GET("", rt.eventHandler.ListEvents)
	events.GET("/:id", rt.eventHandler.GetEvent)
	events.PUT("/:id", rt.eventHandler.UpdateEvent)
	events.DELETE("/:id", rt.eventHandler.DeleteEvent)
}

// setupGuestRoutes configures guest list and bulk action routes
func (rt *Router) setupGuestRoutes(g *echo.Group) {
	guests := g.Group("/events/:id/guests", middleware.RequireEventOrganizer(rt.events))

	guests.GET("", rt.guestHandler.ListGuests)
	guests.POST("", rt.guestHandler.CreateGuest)
	guests.GET("/summary", rt.guestHandler.Summary)
	guests.POST("/export", rt.guestHandler.Export)
	guests.GET("/:guestId", rt.guestHandler.GetGuest)
	guests.PUT("/:guestId", rt.guestHandler.UpdateGuest)
	guests.DELETE("/:guestId", rt.guestHandler.DeleteGuest)

	guests.POST("/selection", rt.bulkHandler.Selection)
	guests.POST("/bulk/dialogs", rt.bulkHandler.OpenDialog)
	guests.POST("/bulk/dialogs/:snapshotId/confirm", rt.bulkHandler.ConfirmDialog)
	guests.DELETE("/bulk/dialogs/:snapshotId", rt.bulkHandler.CancelDialog)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}
