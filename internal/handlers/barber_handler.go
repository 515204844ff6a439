package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BarberHandler struct {
	salons salondomain.Repository
	log    Logger
}

func NewBarberHandler(salons salondomain.Repository, log Logger) *BarberHandler {
	return &BarberHandler{salons: salons, log: log}
}

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// ======================================================
// LIST BARBERS
// ======================================================
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.salons.ListBarbers(
		c.Request.Context(),
		callerFrom(c).SalonID,
		c.Query("query"),
	)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// CREATE BARBER (OWNER)
// ======================================================
func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	salonID := callerFrom(c).SalonID
	barber := &models.User{
		SalonID:      &salonID,
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleBarber,
		Active:       true,
	}

	if err := h.salons.CreateUser(c.Request.Context(), barber); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, barber)
}
