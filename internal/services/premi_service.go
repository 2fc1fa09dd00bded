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

// PremiService mengelola dokumen premi driver: hitung uang premi dari
// setoran x persen, lalu turunkan dan rekonsiliasi entri kasnya.
type PremiService struct {
	PremiRepo    repositories.PremiRepository
	DriverRepo   repositories.DriverRepository
	RuteRepo     repositories.RuteRepository
	ActivityRepo repositories.ActivityLogRepository
	Ledger       LedgerService
	DB           *sql.DB
	RequestID    string
	Session      domain.Session
}

func (s PremiService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s PremiService) repo() repositories.PremiRepository {
	if s.PremiRepo.DB != nil {
		return s.PremiRepo
	}
	return repositories.PremiRepository{DB: s.db()}
}

func (s PremiService) drivers() repositories.DriverRepository {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepository{DB: s.db()}
}

func (s PremiService) rute() repositories.RuteRepository {
	if s.RuteRepo.DB != nil {
		return s.RuteRepo
	}
	return repositories.RuteRepository{DB: s.db()}
}

func (s PremiService) activity() repositories.ActivityLogRepository {
	if s.ActivityRepo.DB != nil {
		return s.ActivityRepo
	}
	return repositories.ActivityLogRepository{DB: s.db()}
}

func (s PremiService) ledgerSvc() LedgerService {
	l := s.Ledger
	if l.DB == nil {
		l.DB = s.db()
	}
	l.RequestID = s.RequestID
	l.Session = s.Session
	return l
}

func (s PremiService) numberer() DocNumberer {
	repo := s.repo()
	return DocNumberer{Prefix: PrefixPremi, Last: repo.LastNoDoc, Count: repo.CountNoDoc}
}

func (s PremiService) List(mulai, sampai string, driverID int64) ([]models.Premi, error) {
	return s.repo().List(mulai, sampai, driverID)
}

func (s PremiService) Get(id int64) (models.Premi, error) {
	return s.repo().GetByID(id)
}

func (s PremiService) PreviewNoDoc(tanggal string) (string, error) {
	return s.numberer().Preview(tanggal)
}

// TarifRute mengambil tarif default satu rute untuk prefill form premi.
func (s PremiService) TarifRute(ruteID int64) (models.Rute, error) {
	return s.rute().GetByID(ruteID)
}

// Create menyimpan dokumen premi baru dan menulis proyeksi ledgernya.
// Derivasi jalan sebelum insert: input yang salah ditolak utuh.
func (s PremiService) Create(p models.Premi) (models.Premi, error) {
	if err := s.validate(&p); err != nil {
		return models.Premi{}, err
	}
	drafts, err := ledger.DerivePremi(p)
	if err != nil {
		return models.Premi{}, err
	}

	noDoc, err := s.numberer().Allocate(p.Tanggal)
	if err != nil {
		return models.Premi{}, err
	}
	p.NoDoc = noDoc
	p.UserID = s.Session.UserID

	// no_doc baru ikut keterangan entri, turunkan ulang setelah alokasi
	drafts, err = ledger.DerivePremi(p)
	if err != nil {
		return models.Premi{}, err
	}

	id, err := s.repo().Insert(p)
	if err != nil {
		return models.Premi{}, err
	}
	p.ID = id

	if err := s.ledgerSvc().Reconcile(s.src(id), drafts, p.Tanggal, p.Jam); err != nil {
		return models.Premi{}, err
	}

	recordActivity(s.activity(), s.RequestID, "premi", "create", s.Session, nil, p)
	utils.LogEvent(s.RequestID, "premi", "create", p.NoDoc)
	return p, nil
}

// Update mengubah dokumen premi dan merekonsiliasi proyeksi ledgernya.
// Baris kas yang komponennya tidak berubah tidak disentuh.
func (s PremiService) Update(p models.Premi) error {
	lama, err := s.repo().GetByID(p.ID)
	if err != nil {
		return err
	}
	p.NoDoc = lama.NoDoc
	if err := s.validate(&p); err != nil {
		return err
	}
	drafts, err := ledger.DerivePremi(p)
	if err != nil {
		return err
	}

	if err := s.repo().Update(p); err != nil {
		return err
	}
	if err := s.ledgerSvc().Reconcile(s.src(p.ID), drafts, p.Tanggal, p.Jam); err != nil {
		return err
	}

	recordActivity(s.activity(), s.RequestID, "premi", "update", s.Session, lama, p)
	return nil
}

// Delete menghapus dokumen premi beserta proyeksi ledgernya.
func (s PremiService) Delete(id int64) error {
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
	recordActivity(s.activity(), s.RequestID, "premi", "delete", s.Session, lama, nil)
	return nil
}

func (s PremiService) src(id int64) ledger.SourceRef {
	return ledger.SourceRef{Tabel: models.SumberPremi, ID: id}
}

func (s PremiService) validate(p *models.Premi) error {
	if _, err := utils.ParseDate(p.Tanggal); err != nil {
		return domain.ValidationError{Field: "tanggal", Msg: "format tanggal salah"}
	}
	if strings.TrimSpace(p.Jam) == "" {
		p.Jam = "00:00:00"
	}
	if p.DriverID <= 0 {
		return domain.ValidationError{Field: "driver_id", Msg: "wajib dipilih"}
	}
	if strings.TrimSpace(p.DriverName) == "" {
		d, err := s.drivers().GetByID(p.DriverID)
		if err != nil {
			return err
		}
		p.DriverName = d.Nama
	}
	if p.Setoran < 0 {
		return domain.ValidationError{Field: "setoran", Msg: "tidak boleh negatif"}
	}

	// persen diisi berarti uang premi dihitung, input manual diabaikan
	if strings.TrimSpace(p.PersenPremi) != "" {
		uangPremi, err := utils.HitungPremi(p.Setoran, p.PersenPremi)
		if err != nil {
			return domain.ValidationError{Field: "persen_premi", Msg: err.Error()}
		}
		p.UangPremi = uangPremi
	}
	return nil
}
