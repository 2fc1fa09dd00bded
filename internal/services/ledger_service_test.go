package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/ledger"
)

var kasHarianCols = []string{
	"id", "tanggal", "jam", "keterangan", "jenis", "jumlah",
	"saldo_awal", "saldo_akhir", "sumber_tabel", "sumber_id",
	"line_role", "urutan", "user_id", "created_at",
}

func expectKasHarianTable(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("kas_harian").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("kas_harian"))
}

func expectLock(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT GET_LOCK").
		WillReturnRows(sqlmock.NewRows([]string{"GET_LOCK"}).AddRow(1))
	mock.ExpectQuery("SELECT RELEASE_LOCK").
		WillReturnRows(sqlmock.NewRows([]string{"RELEASE_LOCK"}).AddRow(1))
}

func TestReconcileMenulisEntriBaru(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectLock(mock)
	expectKasHarianTable(mock)
	mock.ExpectQuery("SELECT (.+) FROM kas_harian").
		WillReturnRows(sqlmock.NewRows(kasHarianCols))
	mock.ExpectExec("INSERT INTO recon_intents").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO kas_harian").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO kas_harian").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("UPDATE recon_intents").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := LedgerService{DB: db, Session: domain.Session{UserID: 3, Username: "kasir"}}
	drafts := []ledger.EntryDraft{
		{Keterangan: "Kasbon KB-20250105-001 Budi", Jenis: models.KasKredit, Jumlah: 60000,
			Role: ledger.LineRole{Role: ledger.RolePokok}},
		{Keterangan: "Sisa kasbon KB-20250105-001", Jenis: models.KasKredit, Jumlah: 40000,
			Role: ledger.LineRole{Role: ledger.RoleSisa}},
	}
	src := ledger.SourceRef{Tabel: models.SumberKasbon, ID: 7}

	if err := svc.Reconcile(src, drafts, "2025-01-05", "10:00:00"); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ekspektasi belum terpenuhi: %v", err)
	}
}

func TestReconcileTanpaPerubahanTidakMenulis(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectLock(mock)
	expectKasHarianTable(mock)
	stored := sqlmock.NewRows(kasHarianCols).
		AddRow(1, "2025-01-05", "10:00:00", "Kasbon KB-20250105-001 Budi", "kredit", 60000,
			0, 0, "kasbon", 7, "pokok", 1, 3, "2025-01-05 10:00:00").
		AddRow(2, "2025-01-05", "10:00:00", "Sisa kasbon KB-20250105-001", "kredit", 40000,
			0, 0, "kasbon", 7, "sisa", 2, 3, "2025-01-05 10:00:00")
	mock.ExpectQuery("SELECT (.+) FROM kas_harian").WillReturnRows(stored)

	svc := LedgerService{DB: db, Session: domain.Session{UserID: 3}}
	drafts := []ledger.EntryDraft{
		{Keterangan: "Kasbon KB-20250105-001 Budi", Jenis: models.KasKredit, Jumlah: 60000,
			Role: ledger.LineRole{Role: ledger.RolePokok}},
		{Keterangan: "Sisa kasbon KB-20250105-001", Jenis: models.KasKredit, Jumlah: 40000,
			Role: ledger.LineRole{Role: ledger.RoleSisa}},
	}
	src := ledger.SourceRef{Tabel: models.SumberKasbon, ID: 7}

	if err := svc.Reconcile(src, drafts, "2025-01-05", "10:00:00"); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	// rencana kosong: tidak ada intent, tidak ada tulisan
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ekspektasi belum terpenuhi: %v", err)
	}
}

func TestReconcileGagalAmbilLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT GET_LOCK").
		WillReturnRows(sqlmock.NewRows([]string{"GET_LOCK"}).AddRow(0))

	svc := LedgerService{DB: db, Session: domain.Session{UserID: 3}}
	err = svc.Reconcile(ledger.SourceRef{Tabel: models.SumberPremi, ID: 1}, nil, "2025-01-05", "10:00:00")
	if !domain.IsConflict(err) {
		t.Fatalf("harusnya ConflictError, dapat %v", err)
	}
}

func TestRemoveSourceMenghapusSemuaEntriSumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectLock(mock)
	mock.ExpectExec("DELETE FROM kas_harian WHERE sumber_tabel").
		WillReturnResult(sqlmock.NewResult(0, 3))

	svc := LedgerService{DB: db, Session: domain.Session{UserID: 3}}
	if err := svc.RemoveSource(ledger.SourceRef{Tabel: models.SumberUangSaku, ID: 9}); err != nil {
		t.Fatalf("RemoveSource error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ekspektasi belum terpenuhi: %v", err)
	}
}
