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

// Repos master data: armada, driver, rute. CRUD polos tanpa derivasi ledger.

type ArmadaRepository struct {
	DB *sql.DB
}

func (r ArmadaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const armadaSelect = `
	SELECT id,
	       COALESCE(kode, ''),
	       COALESCE(no_polisi, ''),
	       COALESCE(jenis, ''),
	       COALESCE(tahun, 0),
	       COALESCE(status, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM armada`

func (r ArmadaRepository) List(q string) ([]models.Armada, error) {
	query := armadaSelect
	args := []any{}
	if strings.TrimSpace(q) != "" {
		query += ` WHERE kode LIKE ? OR no_polisi LIKE ?`
		like := "%" + strings.TrimSpace(q) + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY kode ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Armada{}
	for rows.Next() {
		var a models.Armada
		if err := rows.Scan(&a.ID, &a.Kode, &a.NoPolisi, &a.Jenis, &a.Tahun, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ArmadaRepository) GetByID(id int64) (models.Armada, error) {
	if id <= 0 {
		return models.Armada{}, fmt.Errorf("id tidak valid")
	}
	var a models.Armada
	err := r.db().QueryRow(armadaSelect+` WHERE id=? LIMIT 1`, id).
		Scan(&a.ID, &a.Kode, &a.NoPolisi, &a.Jenis, &a.Tahun, &a.Status, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Armada{}, domain.NotFoundError{Resource: "armada"}
	}
	return a, err
}

func (r ArmadaRepository) Insert(a models.Armada) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO armada (kode, no_polisi, jenis, tahun, status, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, a.Kode, a.NoPolisi, a.Jenis, a.Tahun, a.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ArmadaRepository) Update(a models.Armada) error {
	if a.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE armada SET kode=?, no_polisi=?, jenis=?, tahun=?, status=? WHERE id=?
	`, a.Kode, a.NoPolisi, a.Jenis, a.Tahun, a.Status, a.ID)
	return err
}

func (r ArmadaRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM armada WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "armada"}
	}
	return nil
}

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const driverSelect = `
	SELECT id,
	       COALESCE(nama, ''),
	       COALESCE(telepon, ''),
	       COALESCE(alamat, ''),
	       COALESCE(no_sim, ''),
	       COALESCE(status, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM drivers`

func (r DriverRepository) List(q string) ([]models.Driver, error) {
	query := driverSelect
	args := []any{}
	if strings.TrimSpace(q) != "" {
		query += ` WHERE nama LIKE ?`
		args = append(args, "%"+strings.TrimSpace(q)+"%")
	}
	query += ` ORDER BY nama ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Nama, &d.Telepon, &d.Alamat, &d.NoSIM, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	if id <= 0 {
		return models.Driver{}, fmt.Errorf("id tidak valid")
	}
	var d models.Driver
	err := r.db().QueryRow(driverSelect+` WHERE id=? LIMIT 1`, id).
		Scan(&d.ID, &d.Nama, &d.Telepon, &d.Alamat, &d.NoSIM, &d.Status, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}

func (r DriverRepository) Insert(d models.Driver) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO drivers (nama, telepon, alamat, no_sim, status, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, d.Nama, d.Telepon, d.Alamat, d.NoSIM, d.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r DriverRepository) Update(d models.Driver) error {
	if d.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE drivers SET nama=?, telepon=?, alamat=?, no_sim=?, status=? WHERE id=?
	`, d.Nama, d.Telepon, d.Alamat, d.NoSIM, d.Status, d.ID)
	return err
}

func (r DriverRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

type RuteRepository struct {
	DB *sql.DB
}

func (r RuteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const ruteSelect = `
	SELECT id,
	       COALESCE(asal, ''),
	       COALESCE(tujuan, ''),
	       COALESCE(jarak_km, 0),
	       COALESCE(persen_premi, ''),
	       COALESCE(uang_jalan, 0),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM rute`

func (r RuteRepository) List(q string) ([]models.Rute, error) {
	query := ruteSelect
	args := []any{}
	if strings.TrimSpace(q) != "" {
		query += ` WHERE asal LIKE ? OR tujuan LIKE ?`
		like := "%" + strings.TrimSpace(q) + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY asal ASC, tujuan ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Rute{}
	for rows.Next() {
		var rt models.Rute
		if err := rows.Scan(&rt.ID, &rt.Asal, &rt.Tujuan, &rt.JarakKM, &rt.PersenPremi, &rt.UangJalan, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RuteRepository) GetByID(id int64) (models.Rute, error) {
	if id <= 0 {
		return models.Rute{}, fmt.Errorf("id tidak valid")
	}
	var rt models.Rute
	err := r.db().QueryRow(ruteSelect+` WHERE id=? LIMIT 1`, id).
		Scan(&rt.ID, &rt.Asal, &rt.Tujuan, &rt.JarakKM, &rt.PersenPremi, &rt.UangJalan, &rt.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rute{}, domain.NotFoundError{Resource: "rute"}
	}
	return rt, err
}

func (r RuteRepository) Insert(rt models.Rute) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO rute (asal, tujuan, jarak_km, persen_premi, uang_jalan, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, rt.Asal, rt.Tujuan, rt.JarakKM, rt.PersenPremi, rt.UangJalan)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RuteRepository) Update(rt models.Rute) error {
	if rt.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE rute SET asal=?, tujuan=?, jarak_km=?, persen_premi=?, uang_jalan=? WHERE id=?
	`, rt.Asal, rt.Tujuan, rt.JarakKM, rt.PersenPremi, rt.UangJalan, rt.ID)
	return err
}

func (r RuteRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM rute WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "rute"}
	}
	return nil
}
