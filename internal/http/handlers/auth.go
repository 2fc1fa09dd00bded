package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var p loginPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	svc := services.AuthService{RequestID: middleware.GetRequestID(c)}
	result, err := svc.Login(p.Username, p.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type registerPayload struct {
	Nama     string `json:"nama"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Telepon  string `json:"telepon"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register (owner/admin)
func Register(c *gin.Context) {
	var p registerPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	svc := services.AuthService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
	user, err := svc.Register(models.User{
		Nama:     p.Nama,
		Username: p.Username,
		Email:    p.Email,
		Telepon:  p.Telepon,
		Role:     p.Role,
	}, p.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GET /api/auth/me
func Me(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"userId":   sess.UserID,
		"username": sess.Username,
		"role":     sess.Role,
	})
}
