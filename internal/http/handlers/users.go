package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
)

// GET /api/users
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	user, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var u models.User
	if !BindJSONOrError(c, &u) {
		return
	}
	u.ID = id
	if err := (repositories.UserRepository{}).Update(u); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user diperbarui"})
}

type passwordPayload struct {
	Password string `json:"password" binding:"required"`
}

// PUT /api/users/:id/password
func UpdateUserPassword(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var p passwordPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	svc := services.AuthService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
	if err := svc.GantiPassword(id, p.Password); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password diganti"})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := (repositories.UserRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user dihapus"})
}

// GET /api/menu-access?role=kasir
func GetMenuAccess(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	svc := services.AuthService{RequestID: middleware.GetRequestID(c)}
	menu, err := svc.MenuFor(role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": menu})
}

// PUT /api/menu-access
func SetMenuAccess(c *gin.Context) {
	var m models.MenuAccess
	if !BindJSONOrError(c, &m) {
		return
	}
	svc := services.AuthService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
	if err := svc.SetMenu(m); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "akses menu disimpan"})
}
