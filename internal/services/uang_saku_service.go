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

// UangSakuService mengelola pemberian dan realisasi uang saku driver.
// Pemberian belum menyentuh kas; baru saat terealisasi proyeksi ledger
// diturunkan dan direkonsiliasi.
type UangSakuService struct {
	UangSakuRepo repositories.UangSakuRepository
	DriverRepo   repositories.DriverRepository
	ActivityRepo repositories.ActivityLogRepository
	Ledger       LedgerService
	DB           *sql.DB
	RequestID    string
	Session      domain.Session
}

func (s UangSakuService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s UangSakuService) repo() repositories.UangSakuRepository {
	if s.UangSakuRepo.DB != nil {
		return s.UangSakuRepo
	}
	return repositories.UangSakuRepository{DB: s.db()}
}

func (s UangSakuService) drivers() repositories.DriverRepository {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepository{DB: s.db()}
}

func (s UangSakuService) activity() repositories.ActivityLogRepository {
	if s.ActivityRepo.DB != nil {
		return s.ActivityRepo
	}
	return repositories.ActivityLogRepository{DB: s.db()}
}

func (s UangSakuService) ledgerSvc() LedgerService {
	l := s.Ledger
	if l.DB == nil {
		l.DB = s.db()
	}
	l.RequestID = s.RequestID
	l.Session = s.Session
	return l
}

func (s UangSakuService) numberer() DocNumberer {
	repo := s.repo()
	return DocNumberer{Prefix: PrefixUangSaku, Last: repo.LastNoDoc, Count: repo.CountNoDoc}
}

func (s UangSakuService) List(mulai, sampai string, driverID int64) ([]models.UangSaku, error) {
	return s.repo().List(mulai, sampai, driverID)
}

func (s UangSakuService) Get(id int64) (models.UangSaku, error) {
	return s.repo().GetByID(id)
}

// PreviewNoDoc menghitung nomor dokumen berikutnya untuk form input.
func (s UangSakuService) PreviewNoDoc(tanggal string) (string, error) {
	return s.numberer().Preview(tanggal)
}

// Create mencatat pemberian uang saku, status awal diberikan.
func (s UangSakuService) Create(u models.UangSaku) (models.UangSaku, error) {
	if err := s.validate(&u); err != nil {
		return models.UangSaku{}, err
	}

	noDoc, err := s.numberer().Allocate(u.Tanggal)
	if err != nil {
		return models.UangSaku{}, err
	}
	u.NoDoc = noDoc
	u.Status = models.UangSakuDiberikan
	u.UserID = s.Session.UserID

	id, err := s.repo().Insert(u)
	if err != nil {
		return models.UangSaku{}, err
	}
	u.ID = id

	recordActivity(s.activity(), s.RequestID, "uang_saku", "create", s.Session, nil, u)
	utils.LogEvent(s.RequestID, "uang_saku", "create", u.NoDoc)
	return u, nil
}

// Realisasi mencatat pemakaian per kategori dan menurunkan proyeksi ledger.
// Validasi derivasi jalan dulu: realisasi melebihi jumlah ditolak sebelum
// ada satu baris pun tersimpan.
func (s UangSakuService) Realisasi(id, bbm, makan, parkir, lainnya int64) (models.UangSaku, error) {
	u, err := s.repo().GetByID(id)
	if err != nil {
		return models.UangSaku{}, err
	}
	lama := u

	u.RealisasiBBM = bbm
	u.RealisasiMakan = makan
	u.RealisasiParkir = parkir
	u.RealisasiLainnya = lainnya
	u.Status = models.UangSakuTerealisasi

	drafts, err := ledger.DeriveUangSaku(u)
	if err != nil {
		return models.UangSaku{}, err
	}

	if err := s.repo().Update(u); err != nil {
		return models.UangSaku{}, err
	}
	if err := s.ledgerSvc().Reconcile(s.src(u.ID), drafts, u.Tanggal, u.Jam); err != nil {
		return models.UangSaku{}, err
	}

	recordActivity(s.activity(), s.RequestID, "uang_saku", "realisasi", s.Session, lama, u)
	utils.LogEvent(s.RequestID, "uang_saku", "realisasi", u.NoDoc)
	return u, nil
}

// Update mengubah dokumen uang saku. Kalau sudah terealisasi, proyeksi
// ledger direkonsiliasi ulang mengikuti angka baru.
func (s UangSakuService) Update(u models.UangSaku) error {
	lama, err := s.repo().GetByID(u.ID)
	if err != nil {
		return err
	}
	if err := s.validate(&u); err != nil {
		return err
	}
	u.NoDoc = lama.NoDoc
	u.Status = lama.Status

	drafts, err := ledger.DeriveUangSaku(u)
	if err != nil {
		return err
	}

	if err := s.repo().Update(u); err != nil {
		return err
	}
	if err := s.ledgerSvc().Reconcile(s.src(u.ID), drafts, u.Tanggal, u.Jam); err != nil {
		return err
	}

	recordActivity(s.activity(), s.RequestID, "uang_saku", "update", s.Session, lama, u)
	return nil
}

// Delete menghapus dokumen beserta proyeksi ledgernya.
func (s UangSakuService) Delete(id int64) error {
	lama, err := s.repo().GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo().Delete(id); err != nil {
		return err
	}
	if err := s.ledgerSvc().RemoveSource(s.src(id)); err != nil {
		return err
	}
	recordActivity(s.activity(), s.RequestID, "uang_saku", "delete", s.Session, lama, nil)
	return nil
}

func (s UangSakuService) src(id int64) ledger.SourceRef {
	return ledger.SourceRef{Tabel: models.SumberUangSaku, ID: id}
}

func (s UangSakuService) validate(u *models.UangSaku) error {
	if _, err := utils.ParseDate(u.Tanggal); err != nil {
		return domain.ValidationError{Field: "tanggal", Msg: "format tanggal salah"}
	}
	if strings.TrimSpace(u.Jam) == "" {
		u.Jam = "00:00:00"
	}
	if u.Jumlah <= 0 {
		return domain.ValidationError{Field: "jumlah", Msg: "harus lebih dari nol"}
	}
	if u.DriverID <= 0 {
		return domain.ValidationError{Field: "driver_id", Msg: "wajib dipilih"}
	}
	if strings.TrimSpace(u.DriverName) == "" {
		d, err := s.drivers().GetByID(u.DriverID)
		if err != nil {
			return err
		}
		u.DriverName = d.Nama
	}
	u.Keterangan = utils.NormalizeSpace(u.Keterangan)
	return nil
}
