package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

func uangSakuSvc(c *gin.Context) services.UangSakuService {
	return services.UangSakuService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
}

// GET /api/uang-saku?mulai=&sampai=&driver_id=
func GetUangSaku(c *gin.Context) {
	list, err := uangSakuSvc(c).List(
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

// GET /api/uang-saku/:id
func GetUangSakuByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	u, err := uangSakuSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /api/uang-saku/preview-no?tanggal=
func PreviewUangSakuNoDoc(c *gin.Context) {
	noDoc, err := uangSakuSvc(c).PreviewNoDoc(strings.TrimSpace(c.Query("tanggal")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"noDoc": noDoc})
}

// POST /api/uang-saku
func CreateUangSaku(c *gin.Context) {
	var u models.UangSaku
	if !BindJSONOrError(c, &u) {
		return
	}
	created, err := uangSakuSvc(c).Create(u)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type realisasiPayload struct {
	BBM     int64 `json:"bbm"`
	Makan   int64 `json:"makan"`
	Parkir  int64 `json:"parkir"`
	Lainnya int64 `json:"lainnya"`
}

// PUT /api/uang-saku/:id/realisasi
func RealisasiUangSaku(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var p realisasiPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	u, err := uangSakuSvc(c).Realisasi(id, p.BBM, p.Makan, p.Parkir, p.Lainnya)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/uang-saku/:id
func UpdateUangSaku(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var u models.UangSaku
	if !BindJSONOrError(c, &u) {
		return
	}
	u.ID = id
	if err := uangSakuSvc(c).Update(u); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "uang saku diperbarui"})
}

// DELETE /api/uang-saku/:id
func DeleteUangSaku(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := uangSakuSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "uang saku dihapus"})
}
