package services

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/ledger"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// LaporanKas adalah satu periode buku kas dengan saldo hasil injeksi.
type LaporanKas struct {
	Mulai       string             `json:"mulai"`
	Sampai      string             `json:"sampai"`
	SaldoAwal   int64              `json:"saldoAwal"`
	SaldoAkhir  int64              `json:"saldoAkhir"`
	TotalDebit  int64              `json:"totalDebit"`
	TotalKredit int64              `json:"totalKredit"`
	Entri       []models.KasHarian `json:"entri"`
}

// KasHarianService menyajikan buku kas dan mengelola entri manual.
// Entri turunan (premi/uang saku/kasbon) tidak boleh dimutasi lewat sini.
type KasHarianService struct {
	KasRepo      repositories.KasHarianRepository
	ActivityRepo repositories.ActivityLogRepository
	DB           *sql.DB
	RequestID    string
	Session      domain.Session
}

func (s KasHarianService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s KasHarianService) kas() repositories.KasHarianRepository {
	if s.KasRepo.DB != nil {
		return s.KasRepo
	}
	return repositories.KasHarianRepository{DB: s.db()}
}

func (s KasHarianService) activity() repositories.ActivityLogRepository {
	if s.ActivityRepo.DB != nil {
		return s.ActivityRepo
	}
	return repositories.ActivityLogRepository{DB: s.db()}
}

// Laporan membangun buku kas satu periode. Saldo tidak pernah dibaca dari
// kolom tersimpan: seluruh riwayat sampai akhir periode diinjeksi ulang dari
// nol supaya saldo pembuka periode ikut koreksi di masa lalu.
func (s KasHarianService) Laporan(mulai, sampai string) (LaporanKas, error) {
	mulai = strings.TrimSpace(mulai)
	sampai = strings.TrimSpace(sampai)
	if mulai == "" || sampai == "" {
		return LaporanKas{}, domain.ValidationError{Field: "periode", Msg: "mulai dan sampai wajib diisi"}
	}
	if _, err := utils.ParseDate(mulai); err != nil {
		return LaporanKas{}, domain.ValidationError{Field: "mulai", Msg: "format tanggal salah"}
	}
	if _, err := utils.ParseDate(sampai); err != nil {
		return LaporanKas{}, domain.ValidationError{Field: "sampai", Msg: "format tanggal salah"}
	}
	if sampai < mulai {
		return LaporanKas{}, domain.ValidationError{Field: "periode", Msg: "sampai sebelum mulai"}
	}

	all, err := s.kas().ListUpTo(sampai)
	if err != nil {
		return LaporanKas{}, err
	}
	injected := ledger.InjectBalances(all, 0)

	out := LaporanKas{Mulai: mulai, Sampai: sampai, Entri: []models.KasHarian{}}
	out.SaldoAwal = ledger.OpeningBalance(all, mulai, 0)
	out.SaldoAkhir = out.SaldoAwal
	for _, e := range injected {
		if e.Tanggal < mulai {
			continue
		}
		out.Entri = append(out.Entri, e)
		if e.Jenis == models.KasDebit {
			out.TotalDebit += e.Jumlah
		} else {
			out.TotalKredit += e.Jumlah
		}
		out.SaldoAkhir = e.SaldoAkhir
	}
	return out, nil
}

// TambahManual menulis satu entri kas manual (bukan turunan dokumen).
func (s KasHarianService) TambahManual(e models.KasHarian) (models.KasHarian, error) {
	e.Keterangan = utils.NormalizeSpace(e.Keterangan)
	if e.Keterangan == "" {
		return models.KasHarian{}, domain.ValidationError{Field: "keterangan", Msg: "wajib diisi"}
	}
	if _, err := utils.ParseDate(e.Tanggal); err != nil {
		return models.KasHarian{}, domain.ValidationError{Field: "tanggal", Msg: "format tanggal salah"}
	}
	if e.Jenis != models.KasDebit && e.Jenis != models.KasKredit {
		return models.KasHarian{}, domain.ValidationError{Field: "jenis", Msg: "harus debit atau kredit"}
	}
	if e.Jumlah <= 0 {
		return models.KasHarian{}, domain.ValidationError{Field: "jumlah", Msg: "harus lebih dari nol"}
	}
	if strings.TrimSpace(e.Jam) == "" {
		e.Jam = "00:00:00"
	}

	e.SumberTabel = models.SumberManual
	e.SumberID = 0
	e.LineRole = ""
	e.Urutan = 1
	e.UserID = s.Session.UserID

	id, err := s.kas().Insert(e)
	if err != nil {
		return models.KasHarian{}, err
	}
	e.ID = id

	recordActivity(s.activity(), s.RequestID, "kas_harian", "tambah-manual", s.Session, nil, e)
	utils.LogEvent(s.RequestID, "kas_harian", "tambah-manual", e.Keterangan)
	return e, nil
}

// UbahManual mengubah entri manual. Entri turunan ditolak; sumbernya yang
// harus diedit supaya proyeksi ledger tetap konsisten.
func (s KasHarianService) UbahManual(e models.KasHarian) error {
	lama, err := s.getManual(e.ID)
	if err != nil {
		return err
	}
	e.Keterangan = utils.NormalizeSpace(e.Keterangan)
	if e.Keterangan == "" {
		return domain.ValidationError{Field: "keterangan", Msg: "wajib diisi"}
	}
	if e.Jenis != models.KasDebit && e.Jenis != models.KasKredit {
		return domain.ValidationError{Field: "jenis", Msg: "harus debit atau kredit"}
	}
	if e.Jumlah <= 0 {
		return domain.ValidationError{Field: "jumlah", Msg: "harus lebih dari nol"}
	}

	baru := lama
	baru.Keterangan = e.Keterangan
	baru.Jenis = e.Jenis
	baru.Jumlah = e.Jumlah
	if err := s.kas().Update(baru); err != nil {
		return err
	}

	recordActivity(s.activity(), s.RequestID, "kas_harian", "ubah-manual", s.Session, lama, baru)
	return nil
}

// HapusManual menghapus entri manual.
func (s KasHarianService) HapusManual(id int64) error {
	lama, err := s.getManual(id)
	if err != nil {
		return err
	}
	if err := s.kas().Delete(id); err != nil {
		return err
	}
	recordActivity(s.activity(), s.RequestID, "kas_harian", "hapus-manual", s.Session, lama, nil)
	return nil
}

func (s KasHarianService) getManual(id int64) (models.KasHarian, error) {
	if id <= 0 {
		return models.KasHarian{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	all, err := s.kas().ListUpTo("")
	if err != nil {
		return models.KasHarian{}, err
	}
	for _, e := range all {
		if e.ID != id {
			continue
		}
		if e.SumberTabel != models.SumberManual {
			return models.KasHarian{}, domain.ValidationError{Field: "id",
				Msg: "entri turunan dokumen, ubah lewat dokumen sumbernya"}
		}
		return e, nil
	}
	return models.KasHarian{}, domain.NotFoundError{Resource: "entri kas"}
}
