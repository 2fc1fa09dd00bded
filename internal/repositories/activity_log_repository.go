package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
)

type ActivityLogRepository struct {
	DB *sql.DB
}

func (r ActivityLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ActivityLogRepository) Insert(a models.ActivityLog) error {
	_, err := r.db().Exec(`
		INSERT INTO activity_log (modul, aksi, user_id, username, data_sebelum, data_sesudah, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, a.Modul, a.Aksi, a.UserID, a.Username, a.DataSebelum, a.DataSesudah)
	return err
}

func (r ActivityLogRepository) List(modul string, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `
		SELECT id,
		       COALESCE(modul, ''),
		       COALESCE(aksi, ''),
		       COALESCE(user_id, 0),
		       COALESCE(username, ''),
		       COALESCE(data_sebelum, ''),
		       COALESCE(data_sesudah, ''),
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM activity_log`
	args := []any{}
	if modul != "" {
		query += ` WHERE modul=?`
		args = append(args, modul)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ActivityLog{}
	for rows.Next() {
		var a models.ActivityLog
		if err := rows.Scan(&a.ID, &a.Modul, &a.Aksi, &a.UserID, &a.Username,
			&a.DataSebelum, &a.DataSesudah, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
