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

type UangSakuRepository struct {
	DB *sql.DB
}

func (r UangSakuRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const uangSakuSelect = `
	SELECT id,
	       COALESCE(no_doc, ''),
	       COALESCE(DATE_FORMAT(tanggal, '%Y-%m-%d'), ''),
	       COALESCE(TIME_FORMAT(jam, '%H:%i:%s'), ''),
	       COALESCE(driver_id, 0),
	       COALESCE(driver_name, ''),
	       COALESCE(surat_jalan_id, 0),
	       COALESCE(jumlah, 0),
	       COALESCE(realisasi_bbm, 0),
	       COALESCE(realisasi_makan, 0),
	       COALESCE(realisasi_parkir, 0),
	       COALESCE(realisasi_lainnya, 0),
	       COALESCE(keterangan, ''),
	       COALESCE(status, ''),
	       COALESCE(user_id, 0),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM uang_saku`

func scanUangSaku(scan func(dest ...any) error) (models.UangSaku, error) {
	var u models.UangSaku
	err := scan(
		&u.ID,
		&u.NoDoc,
		&u.Tanggal,
		&u.Jam,
		&u.DriverID,
		&u.DriverName,
		&u.SuratJalanID,
		&u.Jumlah,
		&u.RealisasiBBM,
		&u.RealisasiMakan,
		&u.RealisasiParkir,
		&u.RealisasiLainnya,
		&u.Keterangan,
		&u.Status,
		&u.UserID,
		&u.CreatedAt,
	)
	return u, err
}

// List mengambil uang saku dalam rentang tanggal opsional dan/atau per driver.
func (r UangSakuRepository) List(mulai, sampai string, driverID int64) ([]models.UangSaku, error) {
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
	if driverID > 0 {
		where = append(where, "driver_id=?")
		args = append(args, driverID)
	}

	query := uangSakuSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY tanggal DESC, id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UangSaku{}
	for rows.Next() {
		u, err := scanUangSaku(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UangSakuRepository) GetByID(id int64) (models.UangSaku, error) {
	if id <= 0 {
		return models.UangSaku{}, fmt.Errorf("id tidak valid")
	}
	row := r.db().QueryRow(uangSakuSelect+` WHERE id=? LIMIT 1`, id)
	u, err := scanUangSaku(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UangSaku{}, domain.NotFoundError{Resource: "uang saku"}
	}
	return u, err
}

func (r UangSakuRepository) Insert(u models.UangSaku) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO uang_saku
			(no_doc, tanggal, jam, driver_id, driver_name, surat_jalan_id, jumlah,
			 realisasi_bbm, realisasi_makan, realisasi_parkir, realisasi_lainnya,
			 keterangan, status, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		u.NoDoc, u.Tanggal, u.Jam, u.DriverID, u.DriverName, u.SuratJalanID, u.Jumlah,
		u.RealisasiBBM, u.RealisasiMakan, u.RealisasiParkir, u.RealisasiLainnya,
		u.Keterangan, u.Status, u.UserID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UangSakuRepository) Update(u models.UangSaku) error {
	if u.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE uang_saku
		SET tanggal=?, jam=?, driver_id=?, driver_name=?, surat_jalan_id=?, jumlah=?,
		    realisasi_bbm=?, realisasi_makan=?, realisasi_parkir=?, realisasi_lainnya=?,
		    keterangan=?, status=?
		WHERE id=?
	`,
		u.Tanggal, u.Jam, u.DriverID, u.DriverName, u.SuratJalanID, u.Jumlah,
		u.RealisasiBBM, u.RealisasiMakan, u.RealisasiParkir, u.RealisasiLainnya,
		u.Keterangan, u.Status, u.ID,
	)
	return err
}

func (r UangSakuRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM uang_saku WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "uang saku"}
	}
	return nil
}

// LastNoDoc mengambil nomor dokumen tertinggi untuk satu prefix tanggal.
func (r UangSakuRepository) LastNoDoc(prefix string) (string, error) {
	var no sql.NullString
	err := r.db().QueryRow(`
		SELECT no_doc FROM uang_saku
		WHERE no_doc LIKE ?
		ORDER BY no_doc DESC
		LIMIT 1
	`, prefix+"%").Scan(&no)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return no.String, err
}

// CountNoDoc dipakai cek duplikat sebelum insert (tanpa constraint server).
func (r UangSakuRepository) CountNoDoc(noDoc string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM uang_saku WHERE no_doc=?`, noDoc).Scan(&n)
	return n, err
}
