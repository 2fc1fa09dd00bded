package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type KasHarianRepository struct {
	DB *sql.DB
}

func (r KasHarianRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r KasHarianRepository) table() string {
	return "kas_harian"
}

const kasHarianSelect = `
	SELECT id,
	       COALESCE(DATE_FORMAT(tanggal, '%Y-%m-%d'), ''),
	       COALESCE(TIME_FORMAT(jam, '%H:%i:%s'), ''),
	       COALESCE(keterangan, ''),
	       COALESCE(jenis, ''),
	       COALESCE(jumlah, 0),
	       COALESCE(saldo_awal, 0),
	       COALESCE(saldo_akhir, 0),
	       COALESCE(sumber_tabel, ''),
	       COALESCE(sumber_id, 0),
	       COALESCE(line_role, ''),
	       COALESCE(urutan, 0),
	       COALESCE(user_id, 0),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM kas_harian`

func scanKasHarian(rows *sql.Rows) (models.KasHarian, error) {
	var e models.KasHarian
	err := rows.Scan(
		&e.ID,
		&e.Tanggal,
		&e.Jam,
		&e.Keterangan,
		&e.Jenis,
		&e.Jumlah,
		&e.SaldoAwal,
		&e.SaldoAkhir,
		&e.SumberTabel,
		&e.SumberID,
		&e.LineRole,
		&e.Urutan,
		&e.UserID,
		&e.CreatedAt,
	)
	return e, err
}

func (r KasHarianRepository) queryList(where string, args ...any) ([]models.KasHarian, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, r.table()) {
		return nil, fmt.Errorf("tabel kas_harian tidak ditemukan")
	}

	query := kasHarianSelect
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY tanggal ASC, jam ASC, urutan ASC, id ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.KasHarian{}
	for rows.Next() {
		e, err := scanKasHarian(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListBySource mengambil seluruh entri milik satu transaksi sumber.
func (r KasHarianRepository) ListBySource(tabel string, sumberID int64) ([]models.KasHarian, error) {
	if sumberID <= 0 {
		return nil, fmt.Errorf("sumber_id tidak valid")
	}
	return r.queryList("sumber_tabel=? AND sumber_id=?", tabel, sumberID)
}

// ListUpTo mengambil entri sampai tanggal tertentu (inklusif); sampai kosong
// berarti seluruh riwayat. Dipakai injeksi saldo berjalan.
func (r KasHarianRepository) ListUpTo(sampai string) ([]models.KasHarian, error) {
	if strings.TrimSpace(sampai) == "" {
		return r.queryList("")
	}
	return r.queryList("tanggal<=?", sampai)
}

// ListRange mengambil entri di dalam satu periode laporan.
func (r KasHarianRepository) ListRange(mulai, sampai string) ([]models.KasHarian, error) {
	return r.queryList("tanggal>=? AND tanggal<=?", mulai, sampai)
}

func (r KasHarianRepository) Insert(e models.KasHarian) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("DB belum siap")
	}
	res, err := db.Exec(`
		INSERT INTO kas_harian
			(tanggal, jam, keterangan, jenis, jumlah, saldo_awal, saldo_akhir,
			 sumber_tabel, sumber_id, line_role, urutan, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		e.Tanggal,
		e.Jam,
		e.Keterangan,
		e.Jenis,
		e.Jumlah,
		e.SaldoAwal,
		e.SaldoAkhir,
		e.SumberTabel,
		e.SumberID,
		e.LineRole,
		e.Urutan,
		e.UserID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update menulis field mutable hasil rekonsiliasi. Tanggal/jam/created_at
// sengaja tidak disentuh supaya kronologi lama tidak bergeser.
func (r KasHarianRepository) Update(e models.KasHarian) error {
	if e.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE kas_harian
		SET keterangan=?, jenis=?, jumlah=?, urutan=?
		WHERE id=?
	`, e.Keterangan, e.Jenis, e.Jumlah, e.Urutan, e.ID)
	return err
}

// UpdateSaldo menyegarkan cache saldo tersimpan sebuah entri.
func (r KasHarianRepository) UpdateSaldo(id, saldoAwal, saldoAkhir int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`UPDATE kas_harian SET saldo_awal=?, saldo_akhir=? WHERE id=?`,
		saldoAwal, saldoAkhir, id)
	return err
}

func (r KasHarianRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`DELETE FROM kas_harian WHERE id=?`, id)
	return err
}

// DeleteBySource menghapus seluruh entri milik satu transaksi sumber dan
// tidak menyentuh entri sumber lain.
func (r KasHarianRepository) DeleteBySource(tabel string, sumberID int64) error {
	if sumberID <= 0 {
		return fmt.Errorf("sumber_id tidak valid")
	}
	_, err := r.db().Exec(`DELETE FROM kas_harian WHERE sumber_tabel=? AND sumber_id=?`, tabel, sumberID)
	return err
}
