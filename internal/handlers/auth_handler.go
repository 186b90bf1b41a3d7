package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(c, http.StatusUnauthorized, "Email already exists")
			return
		}
		log.Printf("register failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusCreated, "User registered successfully", user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("login failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusOK, "Login successful", gin.H{
		"accessToken": token,
		"user":        user,
	})
}

// Logout denylists the presented bearer token. It succeeds even without a
// token so clients can always clear their session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		log.Printf("logout failed: %v", err)
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(c, http.StatusOK, "Logged out successfully", nil)
}
