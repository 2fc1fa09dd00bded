package services

import (
	"encoding/json"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// recordActivity menulis snapshot sebelum/sesudah satu mutasi keuangan.
// Best effort: gagal log aktivitas tidak boleh membatalkan mutasinya.
func recordActivity(repo repositories.ActivityLogRepository, requestID, modul, aksi string, sess domain.Session, sebelum, sesudah any) {
	log := models.ActivityLog{
		Modul:    modul,
		Aksi:     aksi,
		UserID:   sess.UserID,
		Username: sess.Username,
	}
	if sebelum != nil {
		if b, err := json.Marshal(sebelum); err == nil {
			log.DataSebelum = string(b)
		}
	}
	if sesudah != nil {
		if b, err := json.Marshal(sesudah); err == nil {
			log.DataSesudah = string(b)
		}
	}
	if err := repo.Insert(log); err != nil {
		utils.LogError(requestID, modul, "activity-log", err)
	}
}
