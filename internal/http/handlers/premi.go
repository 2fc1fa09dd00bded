package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

func premiSvc(c *gin.Context) services.PremiService {
	return services.PremiService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
}

// GET /api/premi?mulai=&sampai=&driver_id=
func GetPremi(c *gin.Context) {
	list, err := premiSvc(c).List(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
		queryInt64(c, "driver_id"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GET /api/premi/:id
func GetPremiByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	p, err := premiSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/premi/preview-no?tanggal=
func PreviewPremiNoDoc(c *gin.Context) {
	noDoc, err := premiSvc(c).PreviewNoDoc(strings.TrimSpace(c.Query("tanggal")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"noDoc": noDoc})
}

// GET /api/premi/tarif-rute/:id
// Prefill form premi dari tarif default rute.
func GetTarifRute(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	rt, err := premiSvc(c).TarifRute(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"persenPremi": rt.PersenPremi,
		"uangJalan":   rt.UangJalan,
	})
}

// POST /api/premi
func CreatePremi(c *gin.Context) {
	var p models.Premi
	if !BindJSONOrError(c, &p) {
		return
	}
	created, err := premiSvc(c).Create(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/premi/:id
func UpdatePremi(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var p models.Premi
	if !BindJSONOrError(c, &p) {
		return
	}
	p.ID = id
	if err := premiSvc(c).Update(p); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "premi diperbarui"})
}

// DELETE /api/premi/:id
func DeletePremi(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := premiSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "premi dihapus"})
}
