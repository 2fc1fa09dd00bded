package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

func kasbonSvc(c *gin.Context) services.KasbonService {
	return services.KasbonService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
}

// GET /api/kasbon?mulai=&sampai=&status=&driver_id=
func GetKasbon(c *gin.Context) {
	list, err := kasbonSvc(c).List(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
		strings.TrimSpace(c.Query("status")),
		queryInt64(c, "driver_id"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GET /api/kasbon/:id
func GetKasbonByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	detail, err := kasbonSvc(c).Detail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/kasbon/preview-no?tanggal=
func PreviewKasbonNoDoc(c *gin.Context) {
	noDoc, err := kasbonSvc(c).PreviewNoDoc(strings.TrimSpace(c.Query("tanggal")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"noDoc": noDoc})
}

// POST /api/kasbon
func CreateKasbon(c *gin.Context) {
	var k models.Kasbon
	if !BindJSONOrError(c, &k) {
		return
	}
	created, err := kasbonSvc(c).Create(k)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// POST /api/kasbon/:id/realisasi
func CreateKasbonRealisasi(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var kr models.KasbonRealisasi
	if !BindJSONOrError(c, &kr) {
		return
	}
	kr.KasbonID = id
	detail, err := kasbonSvc(c).TambahRealisasi(kr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// DELETE /api/kasbon/realisasi/:realisasiId
func DeleteKasbonRealisasi(c *gin.Context) {
	rid, err := strconv.ParseInt(c.Param("realisasiId"), 10, 64)
	if err != nil || rid <= 0 {
		RespondError(c, http.StatusBadRequest, "id realisasi tidak valid", err)
		return
	}
	detail, err := kasbonSvc(c).HapusRealisasi(rid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DELETE /api/kasbon/:id
func DeleteKasbon(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := kasbonSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kasbon dihapus"})
}
