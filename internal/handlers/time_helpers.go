package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// todayInSalon is the salon's current calendar date, YYYY-MM-DD.
func todayInSalon(salon *models.Salon) string {
	return timezone.NowIn(salon.Timezone).Format(timezone.DateLayout)
}

// --------------------------------------------------
// Caller identity, set by AuthMiddleware
// --------------------------------------------------

type caller struct {
	UserID  string
	SalonID string
	Role    string
}

func callerFrom(c *gin.Context) caller {
	return caller{
		UserID:  c.GetString(middleware.ContextUserID),
		SalonID: c.GetString(middleware.ContextSalonID),
		Role:    c.GetString(middleware.ContextUserRole),
	}
}

func (k caller) isOwner() bool  { return k.Role == models.RoleOwner }
func (k caller) isBarber() bool { return k.Role == models.RoleBarber }
