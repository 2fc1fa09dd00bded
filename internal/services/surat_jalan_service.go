package services

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// Transisi status surat jalan yang diizinkan.
var suratJalanNext = map[string][]string{
	models.SuratJalanDraft:     {models.SuratJalanBerangkat},
	models.SuratJalanBerangkat: {models.SuratJalanSelesai},
}

// SuratJalanService mengelola dokumen perintah jalan. Tidak ada derivasi
// ledger di sini; surat jalan murni dokumen operasional.
type SuratJalanService struct {
	SuratJalanRepo repositories.SuratJalanRepository
	ArmadaRepo     repositories.ArmadaRepository
	DriverRepo     repositories.DriverRepository
	RuteRepo       repositories.RuteRepository
	ActivityRepo   repositories.ActivityLogRepository
	DB             *sql.DB
	RequestID      string
	Session        domain.Session
}

func (s SuratJalanService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SuratJalanService) repo() repositories.SuratJalanRepository {
	if s.SuratJalanRepo.DB != nil {
		return s.SuratJalanRepo
	}
	return repositories.SuratJalanRepository{DB: s.db()}
}

func (s SuratJalanService) armada() repositories.ArmadaRepository {
	if s.ArmadaRepo.DB != nil {
		return s.ArmadaRepo
	}
	return repositories.ArmadaRepository{DB: s.db()}
}

func (s SuratJalanService) drivers() repositories.DriverRepository {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepository{DB: s.db()}
}

func (s SuratJalanService) rute() repositories.RuteRepository {
	if s.RuteRepo.DB != nil {
		return s.RuteRepo
	}
	return repositories.RuteRepository{DB: s.db()}
}

func (s SuratJalanService) activity() repositories.ActivityLogRepository {
	if s.ActivityRepo.DB != nil {
		return s.ActivityRepo
	}
	return repositories.ActivityLogRepository{DB: s.db()}
}

func (s SuratJalanService) numberer() DocNumberer {
	repo := s.repo()
	return DocNumberer{Prefix: PrefixSuratJalan, Last: repo.LastNoDoc, Count: repo.CountNoDoc}
}

func (s SuratJalanService) List(mulai, sampai, status string) ([]models.SuratJalan, error) {
	return s.repo().List(mulai, sampai, status)
}

func (s SuratJalanService) Get(id int64) (models.SuratJalan, error) {
	return s.repo().GetByID(id)
}

func (s SuratJalanService) PreviewNoDoc(tanggal string) (string, error) {
	return s.numberer().Preview(tanggal)
}

// Create menyimpan surat jalan baru, status awal draft. No polisi, nama
// driver, dan asal/tujuan diisi dari master kalau kosong.
func (s SuratJalanService) Create(sj models.SuratJalan) (models.SuratJalan, error) {
	if err := s.validate(&sj); err != nil {
		return models.SuratJalan{}, err
	}
	noDoc, err := s.numberer().Allocate(sj.Tanggal)
	if err != nil {
		return models.SuratJalan{}, err
	}
	sj.NoDoc = noDoc
	sj.Status = models.SuratJalanDraft
	sj.UserID = s.Session.UserID

	id, err := s.repo().Insert(sj)
	if err != nil {
		return models.SuratJalan{}, err
	}
	sj.ID = id

	recordActivity(s.activity(), s.RequestID, "surat_jalan", "create", s.Session, nil, sj)
	utils.LogEvent(s.RequestID, "surat_jalan", "create", sj.NoDoc)
	return sj, nil
}

// Update mengubah isi surat jalan. Status diubah lewat UbahStatus.
func (s SuratJalanService) Update(sj models.SuratJalan) error {
	lama, err := s.repo().GetByID(sj.ID)
	if err != nil {
		return err
	}
	if lama.Status == models.SuratJalanSelesai {
		return domain.ValidationError{Field: "status", Msg: "surat jalan selesai tidak bisa diubah"}
	}
	if err := s.validate(&sj); err != nil {
		return err
	}
	sj.NoDoc = lama.NoDoc
	sj.Status = lama.Status

	if err := s.repo().Update(sj); err != nil {
		return err
	}
	recordActivity(s.activity(), s.RequestID, "surat_jalan", "update", s.Session, lama, sj)
	return nil
}

// UbahStatus menjalankan transisi draft -> berangkat -> selesai.
func (s SuratJalanService) UbahStatus(id int64, status string) (models.SuratJalan, error) {
	sj, err := s.repo().GetByID(id)
	if err != nil {
		return models.SuratJalan{}, err
	}
	status = strings.TrimSpace(strings.ToLower(status))
	allowed := false
	for _, next := range suratJalanNext[sj.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.SuratJalan{}, domain.ValidationError{Field: "status",
			Msg: "transisi " + sj.Status + " ke " + status + " tidak diizinkan"}
	}

	lama := sj
	sj.Status = status
	if err := s.repo().Update(sj); err != nil {
		return models.SuratJalan{}, err
	}
	recordActivity(s.activity(), s.RequestID, "surat_jalan", "ubah-status", s.Session, lama, sj)
	utils.LogEvent(s.RequestID, "surat_jalan", "ubah-status", sj.NoDoc+" -> "+status)
	return sj, nil
}

// Delete menghapus surat jalan yang masih draft.
func (s SuratJalanService) Delete(id int64) error {
	sj, err := s.repo().GetByID(id)
	if err != nil {
		return err
	}
	if sj.Status != models.SuratJalanDraft {
		return domain.ValidationError{Field: "status", Msg: "hanya draft yang bisa dihapus"}
	}
	if err := s.repo().Delete(id); err != nil {
		return err
	}
	recordActivity(s.activity(), s.RequestID, "surat_jalan", "delete", s.Session, sj, nil)
	return nil
}

func (s SuratJalanService) validate(sj *models.SuratJalan) error {
	if _, err := utils.ParseDate(sj.Tanggal); err != nil {
		return domain.ValidationError{Field: "tanggal", Msg: "format tanggal salah"}
	}
	if strings.TrimSpace(sj.Jam) == "" {
		sj.Jam = "00:00:00"
	}
	if sj.ArmadaID <= 0 {
		return domain.ValidationError{Field: "armada_id", Msg: "wajib dipilih"}
	}
	if sj.DriverID <= 0 {
		return domain.ValidationError{Field: "driver_id", Msg: "wajib dipilih"}
	}
	if strings.TrimSpace(sj.NoPolisi) == "" {
		a, err := s.armada().GetByID(sj.ArmadaID)
		if err != nil {
			return err
		}
		sj.NoPolisi = a.NoPolisi
	}
	if strings.TrimSpace(sj.DriverName) == "" {
		d, err := s.drivers().GetByID(sj.DriverID)
		if err != nil {
			return err
		}
		sj.DriverName = d.Nama
	}
	if sj.RuteID > 0 && (strings.TrimSpace(sj.Asal) == "" || strings.TrimSpace(sj.Tujuan) == "") {
		rt, err := s.rute().GetByID(sj.RuteID)
		if err != nil {
			return err
		}
		if strings.TrimSpace(sj.Asal) == "" {
			sj.Asal = rt.Asal
		}
		if strings.TrimSpace(sj.Tujuan) == "" {
			sj.Tujuan = rt.Tujuan
		}
	}
	if strings.TrimSpace(sj.Asal) == "" || strings.TrimSpace(sj.Tujuan) == "" {
		return domain.ValidationError{Field: "rute", Msg: "asal dan tujuan wajib diisi"}
	}
	sj.Muatan = utils.NormalizeSpace(sj.Muatan)
	sj.Keterangan = utils.NormalizeSpace(sj.Keterangan)
	return nil
}
