// Package api exposes the booking service over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ampedent/internal/auth"
	"ampedent/internal/booking"
	"ampedent/internal/database"
	"ampedent/internal/timeslot"
)

// Server wires the stores and domain services into gin handlers. All
// dependencies are injected; nothing is resolved lazily at request
// time.
type Server struct {
	db      *database.DB
	auth    *auth.Service
	calc    *timeslot.Calculator
	machine *booking.Machine
	logger  zerolog.Logger
}

// NewServer creates a Server with all its dependencies.
func NewServer(db *database.DB, authSvc *auth.Service, calc *timeslot.Calculator, logger zerolog.Logger) *Server {
	return &Server{
		db:      db,
		auth:    authSvc,
		calc:    calc,
		machine: booking.NewMachine(),
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())
	router.Use(s.requestMetrics())

	api := router.Group("/api")
	{
		// Public surface.
		api.POST("/login", s.handleLogin)
		api.POST("/bookings", s.handleCreateBooking)
		api.GET("/availability", s.handleAvailability)

		// Admin surface. The session middleware only resolves the
		// caller's role; the access package decides per operation.
		admin := api.Group("")
		admin.Use(s.session())
		{
			admin.GET("/bookings", s.handleListBookings)
			admin.GET("/bookings/:id", s.handleGetBooking)
			admin.PUT("/bookings/:id", s.handleUpdateBooking)
			admin.PUT("/bookings/:id/cancel", s.handleCancelBooking)

			admin.GET("/me", s.handleMe)
			admin.GET("/users", s.handleListUsers)
			admin.POST("/users", s.handleCreateUser)
			admin.PUT("/users/:id", s.handleUpdateUser)
			admin.DELETE("/users/:id", s.handleDeleteUser)
		}
	}

	return router
}
