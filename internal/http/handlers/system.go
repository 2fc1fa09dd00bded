package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "backoffice/internal/config"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "database tidak siap", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/ledger/intents
// Intent yang masih pending menandakan urutan tulis rekonsiliasi yang putus.
func GetPendingIntents(c *gin.Context) {
	svc := services.LedgerService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
	intents, err := svc.ListPendingIntents()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": intents})
}

// POST /api/ledger/refresh-saldo
func RefreshSaldo(c *gin.Context) {
	svc := services.LedgerService{
		RequestID: middleware.GetRequestID(c),
		Session:   middleware.GetSession(c),
	}
	updated, err := svc.RefreshSaldo()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
