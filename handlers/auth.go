// auth.go - Handles user registration and login

package handlers

import (
	"errors"
	"log"
	"net/http"

	"go-climate-backend/models"
	"go-climate-backend/store"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterInput struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Name     string `form:"name" binding:"required"`
}

// ShowLogin serves the login form page.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

// Login authenticates a user by scanning every stored user and comparing
// the submitted email and password verbatim against the stored values.
// Success redirects to the admin panel without establishing any session;
// failure reports a generic message that does not reveal which field was
// wrong. This mirrors the original site, defects included.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.Users.ListAll()
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	for _, user := range users {
		if input.Email == user.Email && input.Password == user.Password {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
}

// ShowRegister serves the registration form page.
func (h *Handler) ShowRegister(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "register"})
}

// Register creates a new user and redirects to the login page. A duplicate
// email is reported as a conflict and inserts nothing.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.Users.Insert(models.User{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
