package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/ledger"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

const lockWait = 5 * time.Second

// LedgerService mengeksekusi rencana rekonsiliasi terhadap kas_harian.
// Tulisan berjalan tanpa transaksi, jadi urutan tulis diserialisasi lewat
// advisory lock per sumber dan tiap urutan tulis dicatat dulu sebagai intent.
type LedgerService struct {
	KasRepo    repositories.KasHarianRepository
	IntentRepo repositories.IntentRepository
	DB         *sql.DB
	RequestID  string
	Session    domain.Session
}

func (s LedgerService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s LedgerService) kas() repositories.KasHarianRepository {
	if s.KasRepo.DB != nil {
		return s.KasRepo
	}
	return repositories.KasHarianRepository{DB: s.db()}
}

func (s LedgerService) intents() repositories.IntentRepository {
	if s.IntentRepo.DB != nil {
		return s.IntentRepo
	}
	return repositories.IntentRepository{DB: s.db()}
}

func lockKey(src ledger.SourceRef) string {
	return fmt.Sprintf("ledger:%s:%d", src.Tabel, src.ID)
}

// Reconcile menyamakan entri kas milik src dengan drafts hasil penurunan
// terbaru. Urutan eksekusi: delete, update, insert. Baris yang tidak berubah
// tidak disentuh sama sekali.
func (s LedgerService) Reconcile(src ledger.SourceRef, drafts []ledger.EntryDraft, tanggal, jam string) error {
	if src.Tabel == "" || src.ID <= 0 {
		return domain.ValidationError{Field: "sumber", Msg: "referensi sumber tidak valid"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	release, err := intdb.AdvisoryLock{DB: s.db()}.Acquire(ctx, lockKey(src), lockWait)
	if err != nil {
		return err
	}
	defer release()

	stored, err := s.kas().ListBySource(src.Tabel, src.ID)
	if err != nil {
		return domain.StoreError{Step: "baca entri lama", Err: err}
	}

	plan := ledger.BuildPlan(stored, drafts, src, tanggal, jam, s.Session.UserID)
	if plan.Empty() {
		return nil
	}

	intentID, err := s.recordIntent(src, plan)
	if err != nil {
		return domain.StoreError{Step: "catat intent", Err: err}
	}

	kas := s.kas()
	for _, id := range plan.Deletes {
		if err := kas.Delete(id); err != nil {
			utils.LogError(s.RequestID, "ledger", "reconcile", err)
			return domain.StoreError{Step: fmt.Sprintf("hapus entri %d", id), Err: err}
		}
	}
	for _, e := range plan.Updates {
		if err := kas.Update(e); err != nil {
			utils.LogError(s.RequestID, "ledger", "reconcile", err)
			return domain.StoreError{Step: fmt.Sprintf("ubah entri %d", e.ID), Err: err}
		}
	}
	for _, e := range plan.Inserts {
		if _, err := kas.Insert(e); err != nil {
			utils.LogError(s.RequestID, "ledger", "reconcile", err)
			return domain.StoreError{Step: fmt.Sprintf("tulis entri %s", e.LineRole), Err: err}
		}
	}

	// intent yang gagal ditandai selesai cuma bikin false positive di daftar
	// pending; jangan sampai menggagalkan rekonsiliasi yang sudah beres
	if err := s.intents().MarkDone(intentID); err != nil {
		utils.LogError(s.RequestID, "ledger", "intent-done", err)
	}

	utils.LogEvent(s.RequestID, "ledger", "reconcile",
		fmt.Sprintf("%s#%d: %d hapus, %d ubah, %d tulis", src.Tabel, src.ID,
			len(plan.Deletes), len(plan.Updates), len(plan.Inserts)))
	return nil
}

// RemoveSource menghapus seluruh proyeksi ledger milik satu transaksi sumber.
func (s LedgerService) RemoveSource(src ledger.SourceRef) error {
	if src.Tabel == "" || src.ID <= 0 {
		return domain.ValidationError{Field: "sumber", Msg: "referensi sumber tidak valid"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	release, err := intdb.AdvisoryLock{DB: s.db()}.Acquire(ctx, lockKey(src), lockWait)
	if err != nil {
		return err
	}
	defer release()

	if err := s.kas().DeleteBySource(src.Tabel, src.ID); err != nil {
		return domain.StoreError{Step: "hapus entri sumber", Err: err}
	}
	utils.LogEvent(s.RequestID, "ledger", "remove-source", fmt.Sprintf("%s#%d", src.Tabel, src.ID))
	return nil
}

// RefreshSaldo menyegarkan cache saldo tersimpan seluruh buku. Saldo yang
// tampil selalu hasil injeksi saat baca; cache hanya untuk query ad-hoc
// langsung ke tabel, jadi cukup dipanggil berkala atau setelah mutasi besar.
func (s LedgerService) RefreshSaldo() (int, error) {
	all, err := s.kas().ListUpTo("")
	if err != nil {
		return 0, err
	}
	injected := ledger.InjectBalances(all, 0)

	byID := map[int64]models.KasHarian{}
	for _, e := range all {
		byID[e.ID] = e
	}

	updated := 0
	for _, e := range injected {
		old := byID[e.ID]
		if old.SaldoAwal == e.SaldoAwal && old.SaldoAkhir == e.SaldoAkhir {
			continue
		}
		if err := s.kas().UpdateSaldo(e.ID, e.SaldoAwal, e.SaldoAkhir); err != nil {
			return updated, domain.StoreError{Step: fmt.Sprintf("saldo entri %d", e.ID), Err: err}
		}
		updated++
	}
	return updated, nil
}

// ListPendingIntents melaporkan intent yang tertinggal pending, tanda ada
// urutan tulis yang putus di tengah dan perlu dicek manual.
func (s LedgerService) ListPendingIntents() ([]models.ReconIntent, error) {
	return s.intents().ListPending()
}

func (s LedgerService) recordIntent(src ledger.SourceRef, plan ledger.Plan) (string, error) {
	ringkasan, _ := json.Marshal(map[string]int{
		"hapus": len(plan.Deletes),
		"ubah":  len(plan.Updates),
		"tulis": len(plan.Inserts),
	})
	it := models.ReconIntent{
		ID:          uuid.NewString(),
		SumberTabel: src.Tabel,
		SumberID:    src.ID,
		Ringkasan:   string(ringkasan),
		Status:      models.IntentPending,
		RequestID:   s.RequestID,
		UserID:      s.Session.UserID,
	}
	if err := s.intents().Insert(it); err != nil {
		return "", err
	}
	return it.ID, nil
}
