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

// KasbonDetail adalah kasbon beserta riwayat realisasinya.
type KasbonDetail struct {
	models.Kasbon
	Realisasi   []models.KasbonRealisasi `json:"realisasi"`
	Terealisasi int64                    `json:"terealisasi"`
	Sisa        int64                    `json:"sisa"`
}

// KasbonService mengelola pinjaman driver dan cicilan realisasinya.
// Status lunas diturunkan dari angka, tidak pernah di-set manual.
type KasbonService struct {
	KasbonRepo   repositories.KasbonRepository
	DriverRepo   repositories.DriverRepository
	ActivityRepo repositories.ActivityLogRepository
	Ledger       LedgerService
	DB           *sql.DB
	RequestID    string
	Session      domain.Session
}

func (s KasbonService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s KasbonService) repo() repositories.KasbonRepository {
	if s.KasbonRepo.DB != nil {
		return s.KasbonRepo
	}
	return repositories.KasbonRepository{DB: s.db()}
}

func (s KasbonService) drivers() repositories.DriverRepository {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepository{DB: s.db()}
}

func (s KasbonService) activity() repositories.ActivityLogRepository {
	if s.ActivityRepo.DB != nil {
		return s.ActivityRepo
	}
	return repositories.ActivityLogRepository{DB: s.db()}
}

func (s KasbonService) ledgerSvc() LedgerService {
	l := s.Ledger
	if l.DB == nil {
		l.DB = s.db()
	}
	l.RequestID = s.RequestID
	l.Session = s.Session
	return l
}

func (s KasbonService) numberer() DocNumberer {
	repo := s.repo()
	return DocNumberer{Prefix: PrefixKasbon, Last: repo.LastNoDoc, Count: repo.CountNoDoc}
}

func (s KasbonService) List(mulai, sampai, status string, driverID int64) ([]models.Kasbon, error) {
	return s.repo().List(mulai, sampai, status, driverID)
}

// Detail mengambil kasbon beserta cicilan dan sisanya.
func (s KasbonService) Detail(id int64) (KasbonDetail, error) {
	k, err := s.repo().GetByID(id)
	if err != nil {
		return KasbonDetail{}, err
	}
	realisasi, err := s.repo().ListRealisasi(id)
	if err != nil {
		return KasbonDetail{}, err
	}
	var terealisasi int64
	for _, r := range realisasi {
		terealisasi += r.Jumlah
	}
	return KasbonDetail{
		Kasbon:      k,
		Realisasi:   realisasi,
		Terealisasi: terealisasi,
		Sisa:        k.Jumlah - terealisasi,
	}, nil
}

func (s KasbonService) PreviewNoDoc(tanggal string) (string, error) {
	return s.numberer().Preview(tanggal)
}

// Create mencatat kasbon baru. Kas keluar sebesar pokok langsung
// diproyeksikan sebagai kredit sisa.
func (s KasbonService) Create(k models.Kasbon) (models.Kasbon, error) {
	if err := s.validate(&k); err != nil {
		return models.Kasbon{}, err
	}
	noDoc, err := s.numberer().Allocate(k.Tanggal)
	if err != nil {
		return models.Kasbon{}, err
	}
	k.NoDoc = noDoc
	k.Status = models.KasbonBerjalan
	k.UserID = s.Session.UserID

	drafts, err := ledger.DeriveKasbon(k, nil)
	if err != nil {
		return models.Kasbon{}, err
	}

	id, err := s.repo().Insert(k)
	if err != nil {
		return models.Kasbon{}, err
	}
	k.ID = id

	if err := s.ledgerSvc().Reconcile(s.src(id), drafts, k.Tanggal, k.Jam); err != nil {
		return models.Kasbon{}, err
	}

	recordActivity(s.activity(), s.RequestID, "kasbon", "create", s.Session, nil, k)
	utils.LogEvent(s.RequestID, "kasbon", "create", k.NoDoc)
	return k, nil
}

// TambahRealisasi mencatat satu cicilan. Total realisasi melebihi pokok
// ditolak sebelum ada yang tersimpan; pas sama pokok bikin status lunas.
func (s KasbonService) TambahRealisasi(kr models.KasbonRealisasi) (KasbonDetail, error) {
	k, err := s.repo().GetByID(kr.KasbonID)
	if err != nil {
		return KasbonDetail{}, err
	}
	if _, err := utils.ParseDate(kr.Tanggal); err != nil {
		return KasbonDetail{}, domain.ValidationError{Field: "tanggal", Msg: "format tanggal salah"}
	}
	if kr.Jumlah <= 0 {
		return KasbonDetail{}, domain.ValidationError{Field: "jumlah", Msg: "harus lebih dari nol"}
	}

	existing, err := s.repo().ListRealisasi(k.ID)
	if err != nil {
		return KasbonDetail{}, err
	}
	semua := append(append([]models.KasbonRealisasi{}, existing...), kr)

	drafts, err := ledger.DeriveKasbon(k, semua)
	if err != nil {
		return KasbonDetail{}, err
	}

	if _, err := s.repo().InsertRealisasi(kr); err != nil {
		return KasbonDetail{}, err
	}
	if err := s.syncStatus(&k, semua); err != nil {
		return KasbonDetail{}, err
	}
	if err := s.ledgerSvc().Reconcile(s.src(k.ID), drafts, k.Tanggal, k.Jam); err != nil {
		return KasbonDetail{}, err
	}

	recordActivity(s.activity(), s.RequestID, "kasbon", "realisasi", s.Session, nil, kr)
	utils.LogEvent(s.RequestID, "kasbon", "realisasi", k.NoDoc)
	return s.Detail(k.ID)
}

// HapusRealisasi membatalkan satu cicilan dan merekonsiliasi ulang.
func (s KasbonService) HapusRealisasi(realisasiID int64) (KasbonDetail, error) {
	kr, err := s.repo().GetRealisasiByID(realisasiID)
	if err != nil {
		return KasbonDetail{}, err
	}
	k, err := s.repo().GetByID(kr.KasbonID)
	if err != nil {
		return KasbonDetail{}, err
	}

	if err := s.repo().DeleteRealisasi(realisasiID); err != nil {
		return KasbonDetail{}, err
	}
	sisa, err := s.repo().ListRealisasi(k.ID)
	if err != nil {
		return KasbonDetail{}, err
	}
	drafts, err := ledger.DeriveKasbon(k, sisa)
	if err != nil {
		return KasbonDetail{}, err
	}
	if err := s.syncStatus(&k, sisa); err != nil {
		return KasbonDetail{}, err
	}
	if err := s.ledgerSvc().Reconcile(s.src(k.ID), drafts, k.Tanggal, k.Jam); err != nil {
		return KasbonDetail{}, err
	}

	recordActivity(s.activity(), s.RequestID, "kasbon", "hapus-realisasi", s.Session, kr, nil)
	return s.Detail(k.ID)
}

// Delete menghapus kasbon, cicilannya, dan proyeksi ledgernya.
func (s KasbonService) Delete(id int64) error {
	lama, err := s.Detail(id)
	if err != nil {
		return err
	}
	if err := s.repo().DeleteRealisasiByKasbon(id); err != nil {
		return err
	}
	if err := s.repo().Delete(id); err != nil {
		return err
	}
	if err := s.ledgerSvc().RemoveSource(s.src(id)); err != nil {
		return err
	}
	recordActivity(s.activity(), s.RequestID, "kasbon", "delete", s.Session, lama, nil)
	return nil
}

func (s KasbonService) src(id int64) ledger.SourceRef {
	return ledger.SourceRef{Tabel: models.SumberKasbon, ID: id}
}

func (s KasbonService) syncStatus(k *models.Kasbon, realisasi []models.KasbonRealisasi) error {
	var terealisasi int64
	for _, r := range realisasi {
		terealisasi += r.Jumlah
	}
	status := models.KasbonBerjalan
	if terealisasi >= k.Jumlah {
		status = models.KasbonLunas
	}
	if status == k.Status {
		return nil
	}
	k.Status = status
	return s.repo().Update(*k)
}

func (s KasbonService) validate(k *models.Kasbon) error {
	if _, err := utils.ParseDate(k.Tanggal); err != nil {
		return domain.ValidationError{Field: "tanggal", Msg: "format tanggal salah"}
	}
	if strings.TrimSpace(k.Jam) == "" {
		k.Jam = "00:00:00"
	}
	if k.Jumlah <= 0 {
		return domain.ValidationError{Field: "jumlah", Msg: "harus lebih dari nol"}
	}
	if k.DriverID <= 0 {
		return domain.ValidationError{Field: "driver_id", Msg: "wajib dipilih"}
	}
	if strings.TrimSpace(k.DriverName) == "" {
		d, err := s.drivers().GetByID(k.DriverID)
		if err != nil {
			return err
		}
		k.DriverName = d.Nama
	}
	k.Keterangan = utils.NormalizeSpace(k.Keterangan)
	return nil
}
