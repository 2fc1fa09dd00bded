package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func kasHarianSvc(c *gin.Context) services.KasHarianService {
	return services.KasHarianService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
}

// GET /api/kas-harian?mulai=&sampai=
func GetKasHarian(c *gin.Context) {
	laporan, err := kasHarianSvc(c).Laporan(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, laporan)
}

// POST /api/kas-harian
func CreateKasHarianManual(c *gin.Context) {
	var e models.KasHarian
	if !BindJSONOrError(c, &e) {
		return
	}
	created, err := kasHarianSvc(c).TambahManual(e)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/kas-harian/:id
func UpdateKasHarianManual(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var e models.KasHarian
	if !BindJSONOrError(c, &e) {
		return
	}
	e.ID = id
	if err := kasHarianSvc(c).UbahManual(e); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entri kas diperbarui"})
}

// DELETE /api/kas-harian/:id
func DeleteKasHarianManual(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := kasHarianSvc(c).HapusManual(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entri kas dihapus"})
}

// GET /api/kas-harian/export/pdf?mulai=&sampai=
func ExportKasHarianPDF(c *gin.Context) {
	laporan, err := kasHarianSvc(c).Laporan(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.LaporanKasPDF(laporan)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/kas-harian/export/excel?mulai=&sampai=
func ExportKasHarianExcel(c *gin.Context) {
	laporan, err := kasHarianSvc(c).Laporan(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}
	xlsx, filename, err := svc.LaporanKasExcel(laporan)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, xlsx)
}
