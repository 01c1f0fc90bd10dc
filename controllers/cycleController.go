package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"myovai/services"
)

var sessions *services.SessionManager

// InitCycleSessions wires the cycle controllers to a repository-backed
// session manager. Called once from main before routes are served.
func InitCycleSessions(m *services.SessionManager) {
	sessions = m
}

// GetCycles returns the user's cycle collection and the next-period
// prediction. A null prediction means no cycle qualifies, not a failure.
func GetCycles() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cycles":           store.Cycles(),
			"next_period_days": store.NextPeriodDays(),
			"logging_mode":     store.LoggingMode(),
		})
	}
}

// BeginSelection enters logging mode: the next confirmed date starts a new
// cycle.
func BeginSelection() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		store.BeginPhaseSelection()
		c.JSON(http.StatusOK, gin.H{"logging_mode": true})
	}
}

// CancelSelection leaves logging mode and discards the pending date.
func CancelSelection() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		store.CancelPhaseSelection()
		c.JSON(http.StatusOK, gin.H{"logging_mode": false})
	}
}

// RecordPhaseStart confirms a menstrual start date.
func RecordPhaseStart() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		var body struct {
			Date string `json:"date" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
			return
		}
		if err := store.RecordPhaseStart(c.Request.Context(), body.Date); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cycles": store.Cycles()})
	}
}

// RecordPhaseEnd confirms a menstrual end date. Out-of-order input is
// tolerated by the engine as a no-op, so a 200 here does not guarantee a
// mutation.
func RecordPhaseEnd() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		var body struct {
			Date string `json:"date" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
			return
		}
		if err := store.RecordPhaseEnd(c.Request.Context(), body.Date); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cycles":           store.Cycles(),
			"next_period_days": store.NextPeriodDays(),
		})
	}
}

// EditPhase stages a start or end date change for one cycle.
func EditPhase() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		var body struct {
			Field string `json:"field" binding:"required"`
			Date  string `json:"date" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "field and date are required"})
			return
		}
		if err := store.EditCyclePhases(c.Param("id"), body.Field, body.Date); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Edit staged"})
	}
}

// SaveEdit validates and persists a staged edit.
func SaveEdit() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		if err := store.SaveEdit(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cycles":           store.Cycles(),
			"next_period_days": store.NextPeriodDays(),
		})
	}
}

// RecordSymptoms replaces a cycle's symptom severities.
func RecordSymptoms() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		var body struct {
			Severities map[string]float64 `json:"severities" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "severities is required"})
			return
		}
		if err := store.RecordSymptoms(c.Request.Context(), c.Param("id"), body.Severities); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cycles": store.Cycles()})
	}
}

// ResetCycles empties the whole collection.
func ResetCycles() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		if err := store.ResetAll(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cycles": store.Cycles()})
	}
}

// GetMarkings returns the calendar marking map for rendering.
func GetMarkings() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cycleStore(c)
		if store == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"markings": store.Markings()})
	}
}

// cycleStore resolves the engine for the authenticated user, writing the
// error response itself when that fails.
func cycleStore(c *gin.Context) *services.CycleStore {
	userID := getUserID(c)
	if userID == "" {
		return nil
	}
	store, err := sessions.Store(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return nil
	}
	return store
}

func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var pErr *services.PersistenceError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
	case errors.Is(err, services.ErrCycleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cycle not found"})
	case errors.Is(err, services.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to save your cycle"})
	case errors.As(err, &pErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
