package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
)

// IntentRepository menyimpan catatan niat rekonsiliasi. Intent ditulis
// sebelum urutan tulis dimulai; yang tertinggal pending menandakan tulisan
// parsial dan bisa dilaporkan untuk perbaikan manual.
type IntentRepository struct {
	DB *sql.DB
}

func (r IntentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r IntentRepository) Insert(it models.ReconIntent) error {
	if it.ID == "" {
		return fmt.Errorf("intent id kosong")
	}
	_, err := r.db().Exec(`
		INSERT INTO recon_intents
			(id, sumber_tabel, sumber_id, ringkasan, status, request_id, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, it.ID, it.SumberTabel, it.SumberID, it.Ringkasan, it.Status, it.RequestID, it.UserID)
	return err
}

func (r IntentRepository) MarkDone(id string) error {
	if id == "" {
		return fmt.Errorf("intent id kosong")
	}
	_, err := r.db().Exec(`UPDATE recon_intents SET status=?, done_at=NOW() WHERE id=?`,
		models.IntentDone, id)
	return err
}

// ListPending mengambil intent yang belum selesai, paling lama dulu.
func (r IntentRepository) ListPending() ([]models.ReconIntent, error) {
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(sumber_tabel, ''),
		       COALESCE(sumber_id, 0),
		       COALESCE(ringkasan, ''),
		       COALESCE(status, ''),
		       COALESCE(request_id, ''),
		       COALESCE(user_id, 0),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), ''),
		       COALESCE(DATE_FORMAT(done_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM recon_intents
		WHERE status=?
		ORDER BY created_at ASC
	`, models.IntentPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ReconIntent{}
	for rows.Next() {
		var it models.ReconIntent
		if err := rows.Scan(&it.ID, &it.SumberTabel, &it.SumberID, &it.Ringkasan,
			&it.Status, &it.RequestID, &it.UserID, &it.CreatedAt, &it.DoneAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
