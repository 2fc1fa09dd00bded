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

type SuratJalanRepository struct {
	DB *sql.DB
}

func (r SuratJalanRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const suratJalanSelect = `
	SELECT id,
	       COALESCE(no_doc, ''),
	       COALESCE(DATE_FORMAT(tanggal, '%Y-%m-%d'), ''),
	       COALESCE(TIME_FORMAT(jam, '%H:%i:%s'), ''),
	       COALESCE(armada_id, 0),
	       COALESCE(no_polisi, ''),
	       COALESCE(driver_id, 0),
	       COALESCE(driver_name, ''),
	       COALESCE(rute_id, 0),
	       COALESCE(asal, ''),
	       COALESCE(tujuan, ''),
	       COALESCE(muatan, ''),
	       COALESCE(keterangan, ''),
	       COALESCE(status, ''),
	       COALESCE(user_id, 0),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM surat_jalan`

func scanSuratJalan(scan func(dest ...any) error) (models.SuratJalan, error) {
	var s models.SuratJalan
	err := scan(
		&s.ID,
		&s.NoDoc,
		&s.Tanggal,
		&s.Jam,
		&s.ArmadaID,
		&s.NoPolisi,
		&s.DriverID,
		&s.DriverName,
		&s.RuteID,
		&s.Asal,
		&s.Tujuan,
		&s.Muatan,
		&s.Keterangan,
		&s.Status,
		&s.UserID,
		&s.CreatedAt,
	)
	return s, err
}

func (r SuratJalanRepository) List(mulai, sampai, status string) ([]models.SuratJalan, error) {
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

	query := suratJalanSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY tanggal DESC, id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SuratJalan{}
	for rows.Next() {
		s, err := scanSuratJalan(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SuratJalanRepository) GetByID(id int64) (models.SuratJalan, error) {
	if id <= 0 {
		return models.SuratJalan{}, fmt.Errorf("id tidak valid")
	}
	row := r.db().QueryRow(suratJalanSelect+` WHERE id=? LIMIT 1`, id)
	s, err := scanSuratJalan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SuratJalan{}, domain.NotFoundError{Resource: "surat jalan"}
	}
	return s, err
}

func (r SuratJalanRepository) Insert(s models.SuratJalan) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO surat_jalan
			(no_doc, tanggal, jam, armada_id, no_polisi, driver_id, driver_name,
			 rute_id, asal, tujuan, muatan, keterangan, status, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		s.NoDoc, s.Tanggal, s.Jam, s.ArmadaID, s.NoPolisi, s.DriverID, s.DriverName,
		s.RuteID, s.Asal, s.Tujuan, s.Muatan, s.Keterangan, s.Status, s.UserID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r SuratJalanRepository) Update(s models.SuratJalan) error {
	if s.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE surat_jalan
		SET tanggal=?, jam=?, armada_id=?, no_polisi=?, driver_id=?, driver_name=?,
		    rute_id=?, asal=?, tujuan=?, muatan=?, keterangan=?, status=?
		WHERE id=?
	`,
		s.Tanggal, s.Jam, s.ArmadaID, s.NoPolisi, s.DriverID, s.DriverName,
		s.RuteID, s.Asal, s.Tujuan, s.Muatan, s.Keterangan, s.Status, s.ID,
	)
	return err
}

func (r SuratJalanRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM surat_jalan WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "surat jalan"}
	}
	return nil
}

func (r SuratJalanRepository) LastNoDoc(prefix string) (string, error) {
	var no sql.NullString
	err := r.db().QueryRow(`
		SELECT no_doc FROM surat_jalan
		WHERE no_doc LIKE ?
		ORDER BY no_doc DESC
		LIMIT 1
	`, prefix+"%").Scan(&no)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return no.String, err
}

func (r SuratJalanRepository) CountNoDoc(noDoc string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM surat_jalan WHERE no_doc=?`, noDoc).Scan(&n)
	return n, err
}
