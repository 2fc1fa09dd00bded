package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type PremiRepository struct {
	DB *sql.DB
}

func (r PremiRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const premiSelect = `
	SELECT id,
	       COALESCE(no_doc, ''),
	       COALESCE(DATE_FORMAT(tanggal, '%Y-%m-%d'), ''),
	       COALESCE(TIME_FORMAT(jam, '%H:%i:%s'), ''),
	       COALESCE(driver_id, 0),
	       COALESCE(driver_name, ''),
	       COALESCE(surat_jalan_id, 0),
	       COALESCE(setoran, 0),
	       COALESCE(persen_premi, ''),
	       COALESCE(uang_premi, 0),
	       COALESCE(uang_jalan, 0),
	       COALESCE(potongan_json, ''),
	       COALESCE(uang_saku, 0),
	       COALESCE(realisasi_bbm, 0),
	       COALESCE(realisasi_makan, 0),
	       COALESCE(realisasi_parkir, 0),
	       COALESCE(realisasi_lainnya, 0),
	       COALESCE(user_id, 0),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM premi`

func scanPremi(scan func(dest ...any) error) (models.Premi, error) {
	var p models.Premi
	var potonganJSON string
	err := scan(
		&p.ID,
		&p.NoDoc,
		&p.Tanggal,
		&p.Jam,
		&p.DriverID,
		&p.DriverName,
		&p.SuratJalanID,
		&p.Setoran,
		&p.PersenPremi,
		&p.UangPremi,
		&p.UangJalan,
		&potonganJSON,
		&p.UangSaku,
		&p.RealisasiBBM,
		&p.RealisasiMakan,
		&p.RealisasiParkir,
		&p.RealisasiLainnya,
		&p.UserID,
		&p.CreatedAt,
	)
	if err != nil {
		return p, err
	}
	if strings.TrimSpace(potonganJSON) != "" {
		// potongan korup tidak boleh menggagalkan list; biarkan kosong
		_ = json.Unmarshal([]byte(potonganJSON), &p.Potongan)
	}
	return p, nil
}

func (r PremiRepository) List(mulai, sampai string, driverID int64) ([]models.Premi, error) {
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

	query := premiSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY tanggal DESC, id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Premi{}
	for rows.Next() {
		p, err := scanPremi(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PremiRepository) GetByID(id int64) (models.Premi, error) {
	if id <= 0 {
		return models.Premi{}, fmt.Errorf("id tidak valid")
	}
	row := r.db().QueryRow(premiSelect+` WHERE id=? LIMIT 1`, id)
	p, err := scanPremi(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Premi{}, domain.NotFoundError{Resource: "premi"}
	}
	return p, err
}

func (r PremiRepository) Insert(p models.Premi) (int64, error) {
	potonganJSON, err := json.Marshal(p.Potongan)
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO premi
			(no_doc, tanggal, jam, driver_id, driver_name, surat_jalan_id,
			 setoran, persen_premi, uang_premi, uang_jalan, potongan_json,
			 uang_saku, realisasi_bbm, realisasi_makan, realisasi_parkir,
			 realisasi_lainnya, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		p.NoDoc, p.Tanggal, p.Jam, p.DriverID, p.DriverName, p.SuratJalanID,
		p.Setoran, p.PersenPremi, p.UangPremi, p.UangJalan, string(potonganJSON),
		p.UangSaku, p.RealisasiBBM, p.RealisasiMakan, p.RealisasiParkir,
		p.RealisasiLainnya, p.UserID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PremiRepository) Update(p models.Premi) error {
	if p.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	potonganJSON, err := json.Marshal(p.Potongan)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		UPDATE premi
		SET tanggal=?, jam=?, driver_id=?, driver_name=?, surat_jalan_id=?,
		    setoran=?, persen_premi=?, uang_premi=?, uang_jalan=?, potongan_json=?,
		    uang_saku=?, realisasi_bbm=?, realisasi_makan=?, realisasi_parkir=?,
		    realisasi_lainnya=?
		WHERE id=?
	`,
		p.Tanggal, p.Jam, p.DriverID, p.DriverName, p.SuratJalanID,
		p.Setoran, p.PersenPremi, p.UangPremi, p.UangJalan, string(potonganJSON),
		p.UangSaku, p.RealisasiBBM, p.RealisasiMakan, p.RealisasiParkir,
		p.RealisasiLainnya, p.ID,
	)
	return err
}

func (r PremiRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM premi WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "premi"}
	}
	return nil
}

func (r PremiRepository) LastNoDoc(prefix string) (string, error) {
	var no sql.NullString
	err := r.db().QueryRow(`
		SELECT no_doc FROM premi
		WHERE no_doc LIKE ?
		ORDER BY no_doc DESC
		LIMIT 1
	`, prefix+"%").Scan(&no)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return no.String, err
}

func (r PremiRepository) CountNoDoc(noDoc string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM premi WHERE no_doc=?`, noDoc).Scan(&n)
	return n, err
}
