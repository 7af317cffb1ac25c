package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ampedent/internal/access"
	"ampedent/internal/booking"
	"ampedent/internal/database"
	"ampedent/internal/metrics"
	"ampedent/internal/models"
	"ampedent/internal/validation"
)

// handleCreateBooking accepts a public booking request.
// POST /api/bookings
func (s *Server) handleCreateBooking(c *gin.Context) {
	var input validation.BookingInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	fields, err := input.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// No re-check that the slot is still free: two concurrent
	// submissions for the same slot can both succeed (last-write-wins
	// is the accepted behavior).
	b := &models.Booking{
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Phone:     fields.Phone,
		Message:   fields.Message,
		Date:      fields.Date,
		Time:      fields.Time,
	}
	if err := s.db.CreateBooking(c.Request.Context(), b); err != nil {
		s.logger.Error().Err(err).Msg("create booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create booking"})
		return
	}

	metrics.IncBookingCreated()
	c.JSON(http.StatusOK, gin.H{"message": "Booking created", "booking": b})
}

// handleListBookings returns one page of bookings with optional status
// and search filters.
// GET /api/bookings?status=&search=&page=
func (s *Server) handleListBookings(c *gin.Context) {
	if err := access.CanViewBookings(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	filter := database.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
	}

	bookings, totalPages, err := s.db.ListBookings(c.Request.Context(), filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("list bookings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Bookings fetched",
		"bookings":   bookings,
		"totalPages": totalPages,
	})
}

// handleGetBooking returns a single booking by id.
// GET /api/bookings/:id
func (s *Server) handleGetBooking(c *gin.Context) {
	if err := access.CanViewBookings(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return
	}

	b, err := s.db.GetBooking(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("get booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking fetched", "booking": b})
}

type updateBookingRequest struct {
	Action  string `json:"action"`
	NewDate string `json:"newDate"`
	NewTime string `json:"newTime"`
}

// handleUpdateBooking applies an admin decision to a booking. The
// existence check and the update run as two separate statements, so a
// concurrent writer can interleave between them.
// PUT /api/bookings/:id
func (s *Server) handleUpdateBooking(c *gin.Context) {
	if err := access.CanDecideBookings(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return
	}

	var req updateBookingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	ctx := c.Request.Context()
	current, err := s.db.GetBooking(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("get booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update booking"})
		return
	}

	action := booking.Action(req.Action)
	if !s.machine.Valid(action) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid action"})
		return
	}

	target, err := s.machine.Apply(current.Status, action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid action"})
		return
	}

	if s.machine.RequiresSchedule(action) {
		// The new slot goes through the same field validation as the
		// intake path. Availability is not re-checked server-side; the
		// admin client verifies the slot against the availability
		// endpoint before submitting.
		date, slot, err := validation.ScheduleInput{Date: req.NewDate, Time: req.NewTime}.Validate()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		err = s.db.RescheduleBooking(ctx, id, date, slot)
		if err != nil {
			s.logger.Error().Err(err).Msg("reschedule booking failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update booking"})
			return
		}
	} else {
		if err := s.db.UpdateBookingStatus(ctx, id, target); err != nil {
			s.logger.Error().Err(err).Msg("update booking status failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update booking"})
			return
		}
	}

	metrics.IncAdminDecision(string(action))
	s.logger.Info().
		Int64("booking_id", id).
		Str("action", string(action)).
		Str("admin", sessionName(c)).
		Msg("booking updated")
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// handleCancelBooking is the dedicated cancel path. It updates without
// checking the current status, which makes it idempotent: canceling an
// already canceled booking succeeds again.
// PUT /api/bookings/:id/cancel
func (s *Server) handleCancelBooking(c *gin.Context) {
	if err := access.CanDecideBookings(sessionRole(c)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return
	}

	if err := s.db.UpdateBookingStatus(c.Request.Context(), id, models.StatusCanceled); err != nil {
		s.logger.Error().Err(err).Msg("cancel booking failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update booking"})
		return
	}

	metrics.IncAdminDecision(string(booking.ActionCancel))
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}
