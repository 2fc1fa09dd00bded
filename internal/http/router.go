package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"
)

// NewRouter merakit seluruh endpoint back-office.
// Role: kasir boleh input harian; owner/admin pegang master, user, dan
// operasi pembetulan ledger.
func NewRouter(env intconfig.Env) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: gagal set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.POST("/auth/login", h.Login)

		authed := api.Group("")
		authed.Use(middleware.Auth())

		authed.GET("/auth/me", h.Me)

		admin := authed.Group("")
		admin.Use(middleware.RequireRoles("owner", "admin"))

		admin.POST("/auth/register", h.Register)
		admin.GET("/users", h.GetUsers)
		admin.GET("/users/:id", h.GetUserByID)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.PUT("/users/:id/password", h.UpdateUserPassword)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.GET("/menu-access", h.GetMenuAccess)
		admin.PUT("/menu-access", h.SetMenuAccess)

		// master data
		authed.GET("/armada", h.GetArmada)
		admin.POST("/armada", h.CreateArmada)
		admin.PUT("/armada/:id", h.UpdateArmada)
		admin.DELETE("/armada/:id", h.DeleteArmada)

		authed.GET("/drivers", h.GetDrivers)
		admin.POST("/drivers", h.CreateDriver)
		admin.PUT("/drivers/:id", h.UpdateDriver)
		admin.DELETE("/drivers/:id", h.DeleteDriver)

		authed.GET("/rute", h.GetRute)
		admin.POST("/rute", h.CreateRute)
		admin.PUT("/rute/:id", h.UpdateRute)
		admin.DELETE("/rute/:id", h.DeleteRute)

		// surat jalan
		sj := authed.Group("/surat-jalan")
		sj.GET("", h.GetSuratJalan)
		sj.GET("/preview-no", h.PreviewSuratJalanNoDoc)
		sj.GET("/:id", h.GetSuratJalanByID)
		sj.GET("/:id/pdf", h.GetSuratJalanPDF)
		sj.POST("", h.CreateSuratJalan)
		sj.PUT("/:id", h.UpdateSuratJalan)
		sj.PUT("/:id/status", h.UpdateSuratJalanStatus)
		sj.DELETE("/:id", h.DeleteSuratJalan)

		// uang saku
		us := authed.Group("/uang-saku")
		us.GET("", h.GetUangSaku)
		us.GET("/preview-no", h.PreviewUangSakuNoDoc)
		us.GET("/:id", h.GetUangSakuByID)
		us.POST("", h.CreateUangSaku)
		us.PUT("/:id", h.UpdateUangSaku)
		us.PUT("/:id/realisasi", h.RealisasiUangSaku)
		us.DELETE("/:id", h.DeleteUangSaku)

		// premi
		premi := authed.Group("/premi")
		premi.GET("", h.GetPremi)
		premi.GET("/preview-no", h.PreviewPremiNoDoc)
		premi.GET("/tarif-rute/:id", h.GetTarifRute)
		premi.GET("/:id", h.GetPremiByID)
		premi.POST("", h.CreatePremi)
		premi.PUT("/:id", h.UpdatePremi)
		premi.DELETE("/:id", h.DeletePremi)

		// kasbon
		kasbon := authed.Group("/kasbon")
		kasbon.GET("", h.GetKasbon)
		kasbon.GET("/preview-no", h.PreviewKasbonNoDoc)
		kasbon.GET("/:id", h.GetKasbonByID)
		kasbon.POST("", h.CreateKasbon)
		kasbon.POST("/:id/realisasi", h.CreateKasbonRealisasi)
		kasbon.DELETE("/realisasi/:realisasiId", h.DeleteKasbonRealisasi)
		kasbon.DELETE("/:id", h.DeleteKasbon)

		// buku kas
		kas := authed.Group("/kas-harian")
		kas.GET("", h.GetKasHarian)
		kas.GET("/export/pdf", h.ExportKasHarianPDF)
		kas.GET("/export/excel", h.ExportKasHarianExcel)
		kas.POST("", h.CreateKasHarianManual)
		kas.PUT("/:id", h.UpdateKasHarianManual)
		kas.DELETE("/:id", h.DeleteKasHarianManual)

		// laporan
		authed.GET("/reports/rekap-driver", h.GetRekapDriver)
		authed.GET("/reports/rekap-driver/excel", h.ExportRekapDriverExcel)
		admin.GET("/activity-log", h.GetActivityLog)

		// perawatan ledger
		admin.GET("/ledger/intents", h.GetPendingIntents)
		admin.POST("/ledger/refresh-saldo", h.RefreshSaldo)
	}

	return r
}
