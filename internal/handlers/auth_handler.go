package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oralvis-health/scan-api/internal/domain/user"
	"github.com/oralvis-health/scan-api/internal/httperr"
	"github.com/oralvis-health/scan-api/internal/token"
)

type AuthHandler struct {
	users  user.Repository
	tokens *token.Service
}

func NewAuthHandler(users user.Repository, tokens *token.Service) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide email, password, and role.")
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		httperr.BadRequest(c, "invalid_role", "Role must be Technician or Dentist.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error registering user.")
		return
	}

	created, err := h.users.Create(c.Request.Context(), req.Email, string(hashed), role)
	if err != nil {
		if httperr.IsBusiness(err, "email_already_exists") {
			httperr.Conflict(c, "email_already_exists", "A user with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Error registering user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      created.ID,
		"message": "User created.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide email and password.")
		return
	}

	found, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.BadRequest(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Server error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		httperr.BadRequest(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	signed, err := h.tokens.Issue(found.ID, user.Role(found.Role))
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":    found.ID,
			"email": found.Email,
			"role":  found.Role,
		},
	})
}
