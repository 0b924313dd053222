package authController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ali-Haider-Developer/E-Commerce-Admin/models"
	"github.com/Ali-Haider-Developer/E-Commerce-Admin/store"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}

// Login verifies credentials and opens a session.
// POST /api/auth/login -> {"user": {...}, "token": "..."}
func Login(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		user, err := s.GetUserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		session := models.Session{
			Token:  uuid.NewString(),
			UserID: user.ID,
		}
		if err := s.CreateSession(&session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"token": session.Token,
		})
	}
}

// Logout removes the session for the given token. Idempotent: logging out an
// unknown token still succeeds.
// PUT /api/auth -> {"success": true}
func Logout(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		if err := s.DeleteSession(req.Token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Me returns the user behind the current session. The session middleware has
// already verified the token; the user may still have been deleted since.
// GET /api/auth/me -> {...user}
func Me(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		user, err := s.GetUser(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user data"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
