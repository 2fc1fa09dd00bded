package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
)

// Handler master data. CRUD polos langsung ke repo, tanpa derivasi ledger.

// GET /api/armada?q=BK
func GetArmada(c *gin.Context) {
	list, err := repositories.ArmadaRepository{}.List(strings.TrimSpace(c.Query("q")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// POST /api/armada
func CreateArmada(c *gin.Context) {
	var a models.Armada
	if !BindJSONOrError(c, &a) {
		return
	}
	if strings.TrimSpace(a.NoPolisi) == "" {
		RespondError(c, http.StatusBadRequest, "no_polisi wajib diisi", nil)
		return
	}
	if a.Status == "" {
		a.Status = "aktif"
	}
	id, err := repositories.ArmadaRepository{}.Insert(a)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	a.ID = id
	c.JSON(http.StatusCreated, a)
}

// PUT /api/armada/:id
func UpdateArmada(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var a models.Armada
	if !BindJSONOrError(c, &a) {
		return
	}
	a.ID = id
	if err := (repositories.ArmadaRepository{}).Update(a); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "armada diperbarui"})
}

// DELETE /api/armada/:id
func DeleteArmada(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := (repositories.ArmadaRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "armada dihapus"})
}

// GET /api/drivers?q=budi
func GetDrivers(c *gin.Context) {
	list, err := repositories.DriverRepository{}.List(strings.TrimSpace(c.Query("q")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var d models.Driver
	if !BindJSONOrError(c, &d) {
		return
	}
	if strings.TrimSpace(d.Nama) == "" {
		RespondError(c, http.StatusBadRequest, "nama wajib diisi", nil)
		return
	}
	if d.Status == "" {
		d.Status = "aktif"
	}
	id, err := repositories.DriverRepository{}.Insert(d)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	d.ID = id
	c.JSON(http.StatusCreated, d)
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var d models.Driver
	if !BindJSONOrError(c, &d) {
		return
	}
	d.ID = id
	if err := (repositories.DriverRepository{}).Update(d); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver diperbarui"})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := (repositories.DriverRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver dihapus"})
}

// GET /api/rute?q=medan
func GetRute(c *gin.Context) {
	list, err := repositories.RuteRepository{}.List(strings.TrimSpace(c.Query("q")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// POST /api/rute
func CreateRute(c *gin.Context) {
	var rt models.Rute
	if !BindJSONOrError(c, &rt) {
		return
	}
	if strings.TrimSpace(rt.Asal) == "" || strings.TrimSpace(rt.Tujuan) == "" {
		RespondError(c, http.StatusBadRequest, "asal dan tujuan wajib diisi", nil)
		return
	}
	id, err := repositories.RuteRepository{}.Insert(rt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	rt.ID = id
	c.JSON(http.StatusCreated, rt)
}

// PUT /api/rute/:id
func UpdateRute(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	var rt models.Rute
	if !BindJSONOrError(c, &rt) {
		return
	}
	rt.ID = id
	if err := (repositories.RuteRepository{}).Update(rt); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rute diperbarui"})
}

// DELETE /api/rute/:id
func DeleteRute(c *gin.Context) {
	id, ok := ParamID(c)
	if !ok {
		return
	}
	if err := (repositories.RuteRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rute dihapus"})
}
