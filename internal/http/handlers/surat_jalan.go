package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

func suratJalanSvc(c *gin.Context) services.SuratJalanService {
	return services.SuratJalanService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
}

// GET /api/surat-jalan?mulai=&sampai=&status=
func GetSuratJalan(c *gin.Context) {
	list, err := suratJalanSvc(c).List(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
		strings.TrimSpace(c.Query("status")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GET /api/surat-jalan/:id
func GetSuratJalanByID(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	sj, err := suratJalanSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sj)
}

// GET /api/surat-jalan/preview-no?tanggal=2025-01-10
func PreviewSuratJalanNoDoc(c *gin.Context) {
	noDoc, err := suratJalanSvc(c).PreviewNoDoc(strings.TrimSpace(c.Query("tanggal")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"noDoc": noDoc})
}

// POST /api/surat-jalan
func CreateSuratJalan(c *gin.Context) {
	var sj models.SuratJalan
	if !BindJSONOrError(c, &sj) {
		return
	}
	created, err := suratJalanSvc(c).Create(sj)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/surat-jalan/:id
func UpdateSuratJalan(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var sj models.SuratJalan
	if !BindJSONOrError(c, &sj) {
		return
	}
	sj.ID = id
	if err := suratJalanSvc(c).Update(sj); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "surat jalan diperbarui"})
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/surat-jalan/:id/status
func UpdateSuratJalanStatus(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var p statusPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	sj, err := suratJalanSvc(c).UbahStatus(id, p.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sj)
}

// DELETE /api/surat-jalan/:id
func DeleteSuratJalan(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := suratJalanSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "surat jalan dihapus"})
}

// GET /api/surat-jalan/:id/pdf
func GetSuratJalanPDF(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.SuratJalanPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
