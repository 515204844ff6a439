package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type MeHandler struct {
	salons salondomain.Repository
	log    Logger
}

func NewMeHandler(salons salondomain.Repository, log Logger) *MeHandler {
	return &MeHandler{salons: salons, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	me := callerFrom(c)

	user, err := h.salons.GetUserByID(c.Request.Context(), me.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	var salon *models.Salon
	if user.SalonID != nil {
		if salon, err = h.salons.GetSalonByID(c.Request.Context(), *user.SalonID); err != nil {
			writeError(c, h.log, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"salon": salon,
	})
}

// --------------------------------------------------
// Salon profile
// --------------------------------------------------

type UpdateSalonRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *MeHandler) GetSalon(c *gin.Context) {
	salon, err := h.salons.GetSalonByID(c.Request.Context(), callerFrom(c).SalonID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, salon)
}

func (h *MeHandler) UpdateSalon(c *gin.Context) {
	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	salon, err := h.salons.GetSalonByID(c.Request.Context(), callerFrom(c).SalonID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "name must not be empty")
			return
		}
		salon.Name = name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "unknown timezone "+*req.Timezone)
			return
		}
		salon.Timezone = *req.Timezone
	}

	if err := h.salons.UpdateSalon(c.Request.Context(), salon); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, salon)
}
