package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/domain/models"
)

func TestListBySourceUrutKronologis(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("kas_harian").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("kas_harian"))

	cols := []string{"id", "tanggal", "jam", "keterangan", "jenis", "jumlah",
		"saldo_awal", "saldo_akhir", "sumber_tabel", "sumber_id", "line_role",
		"urutan", "user_id", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(3, "2025-01-10", "08:00:00", "Premi driver Budi PR-001", "kredit", 90000,
			0, 0, "premi", 5, "pokok", 1, 1, "2025-01-10 08:00:00").
		AddRow(4, "2025-01-10", "08:00:00", "Potongan tol PR-001", "debit", 15000,
			0, 0, "premi", 5, "potongan:tol", 2, 1, "2025-01-10 08:00:00")
	mock.ExpectQuery("SELECT (.+) FROM kas_harian").WithArgs("premi", int64(5)).
		WillReturnRows(rows)

	repo := KasHarianRepository{DB: db}
	out, err := repo.ListBySource(models.SumberPremi, 5)
	if err != nil {
		t.Fatalf("ListBySource error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("jumlah entri %d, harusnya 2", len(out))
	}
	if out[0].LineRole != "pokok" || out[1].LineRole != "potongan:tol" {
		t.Fatalf("line_role salah: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ekspektasi belum terpenuhi: %v", err)
	}
}

func TestListBySourceTanpaTabel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// guard migrasi: tabel belum ada harus jadi error jelas, bukan SQL mentah
	mock.ExpectQuery("information_schema\\.tables").WithArgs("kas_harian").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	repo := KasHarianRepository{DB: db}
	if _, err := repo.ListBySource(models.SumberKasbon, 1); err == nil {
		t.Fatalf("harusnya error tabel tidak ditemukan")
	}
}

func TestUpdateHanyaFieldMutable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE kas_harian").
		WithArgs("Potongan tol PR-001", "debit", int64(20000), 2, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := KasHarianRepository{DB: db}
	err = repo.Update(models.KasHarian{
		ID:         4,
		Tanggal:    "1999-01-01", // harus diabaikan oleh UPDATE
		Keterangan: "Potongan tol PR-001",
		Jenis:      "debit",
		Jumlah:     20000,
		Urutan:     2,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ekspektasi belum terpenuhi: %v", err)
	}
}
