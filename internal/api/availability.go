package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ampedent/internal/timeslot"
)

// handleAvailability returns the free slots for a date.
// GET /api/availability?date=YYYY-MM-DD
func (s *Server) handleAvailability(c *gin.Context) {
	date, err := timeslot.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":        "Could not fetch available times",
			"error":          err.Error(),
			"availableTimes": []string{},
		})
		return
	}

	times, err := s.calc.AvailableTimes(c.Request.Context(), date)
	if errors.Is(err, timeslot.ErrWeekend) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":        "Could not fetch available times",
			"error":          err.Error(),
			"availableTimes": []string{},
		})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("availability failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":        "Could not fetch available times",
			"availableTimes": []string{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Available times fetched",
		"availableTimes": times,
	})
}
