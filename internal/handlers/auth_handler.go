package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AuthHandler struct {
	salons salondomain.Repository
	config *config.Config
	log    Logger
}

func NewAuthHandler(salons salondomain.Repository, cfg *config.Config, log Logger) *AuthHandler {
	return &AuthHandler{salons: salons, config: cfg, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	SalonName    string `json:"salon_name" binding:"required"`
	SalonSlug    string `json:"salon_slug" binding:"required"`
	SalonPhone   string `json:"salon_phone"`
	SalonAddress string `json:"salon_address"`
	Timezone     string `json:"timezone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a salon together with its owner account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = timezone.Default()
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "unknown timezone "+tz)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	salon := &models.Salon{
		Name:     strings.TrimSpace(req.SalonName),
		Slug:     strings.ToLower(strings.TrimSpace(req.SalonSlug)),
		Phone:    req.SalonPhone,
		Address:  req.SalonAddress,
		Timezone: tz,
	}
	owner := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleOwner,
		Active:       true,
	}

	if err := h.salons.CreateSalonWithOwner(c.Request.Context(), salon, owner); err != nil {
		writeError(c, h.log, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, owner, salon)
}

// RegisterCustomer creates a customer account, not bound to any salon.
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleCustomer,
		Active:       true,
	}

	if err := h.salons.CreateUser(c.Request.Context(), user); err != nil {
		writeError(c, h.log, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.salons.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUserNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
			return
		}
		writeError(c, h.log, err)
		return
	}

	if !user.Active {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	var salon *models.Salon
	if user.SalonID != nil {
		salon, err = h.salons.GetSalonByID(c.Request.Context(), *user.SalonID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
	}

	h.respondWithToken(c, http.StatusOK, user, salon)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User, salon *models.Salon) {
	token, err := h.generateToken(user)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(status, gin.H{
		"user":  user,
		"salon": salon,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	salonID := ""
	if user.SalonID != nil {
		salonID = *user.SalonID
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"salonId": salonID,
		"role":    user.Role,
		"exp":     now.Add(h.config.TokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
