package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type KasbonRepository struct {
	DB *sql.DB
}

func (r KasbonRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const kasbonSelect = `
	SELECT id,
	       COALESCE(no_doc, ''),
	       COALESCE(DATE_FORMAT(tanggal, '%Y-%m-%d'), ''),
	       COALESCE(TIME_FORMAT(jam, '%H:%i:%s'), ''),
	       COALESCE(driver_id, 0),
	       COALESCE(driver_name, ''),
	       COALESCE(jumlah, 0),
	       COALESCE(keterangan, ''),
	       COALESCE(status, ''),
	       COALESCE(user_id, 0),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM kasbon`

func scanKasbon(scan func(dest ...any) error) (models.Kasbon, error) {
	var k models.Kasbon
	err := scan(
		&k.ID,
		&k.NoDoc,
		&k.Tanggal,
		&k.Jam,
		&k.DriverID,
		&k.DriverName,
		&k.Jumlah,
		&k.Keterangan,
		&k.Status,
		&k.UserID,
		&k.CreatedAt,
	)
	return k, err
}

func (r KasbonRepository) List(mulai, sampai, status string, driverID int64) ([]models.Kasbon, error) {
	where := []string{}
	args := []any{}
	if strings.TrimSpace(mulai) != "" {
		where = append(where, "tanggal>=?")
		args = append(args, mulai)
	}
	if strings.TrimSpace(sampai) != "" {
		where = append(where, "tanggal<=?")
		args = append(args, sampai)
	}
	if strings.TrimSpace(status) != "" {
		where = append(where, "status=?")
		args = append(args, status)
	}
	if driverID > 0 {
		where = append(where, "driver_id=?")
		args = append(args, driverID)
	}

	query := kasbonSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY tanggal DESC, id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Kasbon{}
	for rows.Next() {
		k, err := scanKasbon(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r KasbonRepository) GetByID(id int64) (models.Kasbon, error) {
	if id <= 0 {
		return models.Kasbon{}, fmt.Errorf("id tidak valid")
	}
	row := r.db().QueryRow(kasbonSelect+` WHERE id=? LIMIT 1`, id)
	k, err := scanKasbon(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Kasbon{}, domain.NotFoundError{Resource: "kasbon"}
	}
	return k, err
}

func (r KasbonRepository) Insert(k models.Kasbon) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO kasbon
			(no_doc, tanggal, jam, driver_id, driver_name, jumlah, keterangan, status, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, k.NoDoc, k.Tanggal, k.Jam, k.DriverID, k.DriverName, k.Jumlah, k.Keterangan, k.Status, k.UserID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r KasbonRepository) Update(k models.Kasbon) error {
	if k.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE kasbon
		SET tanggal=?, jam=?, driver_id=?, driver_name=?, jumlah=?, keterangan=?, status=?
		WHERE id=?
	`, k.Tanggal, k.Jam, k.DriverID, k.DriverName, k.Jumlah, k.Keterangan, k.Status, k.ID)
	return err
}

func (r KasbonRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM kasbon WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "kasbon"}
	}
	return nil
}

func (r KasbonRepository) LastNoDoc(prefix string) (string, error) {
	var no sql.NullString
	err := r.db().QueryRow(`
		SELECT no_doc FROM kasbon
		WHERE no_doc LIKE ?
		ORDER BY no_doc DESC
		LIMIT 1
	`, prefix+"%").Scan(&no)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return no.String, err
}

func (r KasbonRepository) CountNoDoc(noDoc string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM kasbon WHERE no_doc=?`, noDoc).Scan(&n)
	return n, err
}

// ---- kasbon_realisasi ----

const kasbonRealisasiSelect = `
	SELECT id,
	       COALESCE(kasbon_id, 0),
	       COALESCE(DATE_FORMAT(tanggal, '%Y-%m-%d'), ''),
	       COALESCE(jumlah, 0),
	       COALESCE(keterangan, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM kasbon_realisasi`

func (r KasbonRepository) ListRealisasi(kasbonID int64) ([]models.KasbonRealisasi, error) {
	if kasbonID <= 0 {
		return nil, fmt.Errorf("kasbon_id tidak valid")
	}
	rows, err := r.db().Query(kasbonRealisasiSelect+` WHERE kasbon_id=? ORDER BY tanggal ASC, id ASC`, kasbonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.KasbonRealisasi{}
	for rows.Next() {
		var kr models.KasbonRealisasi
		if err := rows.Scan(&kr.ID, &kr.KasbonID, &kr.Tanggal, &kr.Jumlah, &kr.Keterangan, &kr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, kr)
	}
	return out, rows.Err()
}

func (r KasbonRepository) InsertRealisasi(kr models.KasbonRealisasi) (int64, error) {
	if kr.KasbonID <= 0 {
		return 0, fmt.Errorf("kasbon_id tidak valid")
	}
	res, err := r.db().Exec(`
		INSERT INTO kasbon_realisasi (kasbon_id, tanggal, jumlah, keterangan, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, kr.KasbonID, kr.Tanggal, kr.Jumlah, kr.Keterangan)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r KasbonRepository) DeleteRealisasi(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM kasbon_realisasi WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "realisasi kasbon"}
	}
	return nil
}

func (r KasbonRepository) GetRealisasiByID(id int64) (models.KasbonRealisasi, error) {
	if id <= 0 {
		return models.KasbonRealisasi{}, fmt.Errorf("id tidak valid")
	}
	var kr models.KasbonRealisasi
	err := r.db().QueryRow(kasbonRealisasiSelect+` WHERE id=? LIMIT 1`, id).
		Scan(&kr.ID, &kr.KasbonID, &kr.Tanggal, &kr.Jumlah, &kr.Keterangan, &kr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.KasbonRealisasi{}, domain.NotFoundError{Resource: "realisasi kasbon"}
	}
	return kr, err
}

// DeleteRealisasiByKasbon menghapus seluruh realisasi milik satu kasbon.
func (r KasbonRepository) DeleteRealisasiByKasbon(kasbonID int64) error {
	if kasbonID <= 0 {
		return fmt.Errorf("kasbon_id tidak valid")
	}
	_, err := r.db().Exec(`DELETE FROM kasbon_realisasi WHERE kasbon_id=?`, kasbonID)
	return err
}
