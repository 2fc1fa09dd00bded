package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
)

// GET /api/reports/rekap-driver?mulai=&sampai=
func GetRekapDriver(c *gin.Context) {
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	rekap, err := svc.RekapPerDriver(
		strings.TrimSpace(c.Query("mulai")),
		strings.TrimSpace(c.Query("sampai")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rekap})
}

// GET /api/reports/rekap-driver/excel?mulai=&sampai=
func ExportRekapDriverExcel(c *gin.Context) {
	mulai := strings.TrimSpace(c.Query("mulai"))
	sampai := strings.TrimSpace(c.Query("sampai"))

	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	rekap, err := svc.RekapPerDriver(mulai, sampai)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	export := services.ExportService{RequestID: middleware.GetRequestID(c)}
	xlsx, filename, err := export.RekapDriverExcel(mulai, sampai, rekap)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, xlsx)
}

// GET /api/activity-log?modul=&limit=
func GetActivityLog(c *gin.Context) {
	list, err := repositories.ActivityLogRepository{}.List(
		strings.TrimSpace(c.Query("modul")),
		int(queryInt64(c, "limit")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}
