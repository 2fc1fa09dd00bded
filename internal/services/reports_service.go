package services

import (
	"database/sql"
	"sort"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// RekapDriver adalah ringkasan keuangan satu driver dalam satu periode.
type RekapDriver struct {
	DriverID       int64  `json:"driverId"`
	DriverName     string `json:"driverName"`
	JumlahPremi    int    `json:"jumlahPremi"`
	TotalSetoran   int64  `json:"totalSetoran"`
	TotalPremi     int64  `json:"totalPremi"`
	TotalUangJalan int64  `json:"totalUangJalan"`
	TotalPotongan  int64  `json:"totalPotongan"`
	TotalUangSaku  int64  `json:"totalUangSaku"`
	TotalRealisasi int64  `json:"totalRealisasi"`
	KasbonBerjalan int64  `json:"kasbonBerjalan"`
}

// ReportsService membangun rekap lintas modul untuk laporan periode.
type ReportsService struct {
	PremiRepo    repositories.PremiRepository
	UangSakuRepo repositories.UangSakuRepository
	KasbonRepo   repositories.KasbonRepository
	DB           *sql.DB
	RequestID    string
}

func (s ReportsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReportsService) premi() repositories.PremiRepository {
	if s.PremiRepo.DB != nil {
		return s.PremiRepo
	}
	return repositories.PremiRepository{DB: s.db()}
}

func (s ReportsService) uangSaku() repositories.UangSakuRepository {
	if s.UangSakuRepo.DB != nil {
		return s.UangSakuRepo
	}
	return repositories.UangSakuRepository{DB: s.db()}
}

func (s ReportsService) kasbon() repositories.KasbonRepository {
	if s.KasbonRepo.DB != nil {
		return s.KasbonRepo
	}
	return repositories.KasbonRepository{DB: s.db()}
}

// RekapPerDriver merekap premi, uang saku, dan kasbon berjalan per driver.
// Kasbon berjalan dihitung dari seluruh kasbon berstatus berjalan, bukan
// hanya yang dibuat dalam periode, karena hutang lama tetap hutang.
func (s ReportsService) RekapPerDriver(mulai, sampai string) ([]RekapDriver, error) {
	mulai = strings.TrimSpace(mulai)
	sampai = strings.TrimSpace(sampai)
	if mulai == "" || sampai == "" {
		return nil, domain.ValidationError{Field: "periode", Msg: "mulai dan sampai wajib diisi"}
	}
	if _, err := utils.ParseDate(mulai); err != nil {
		return nil, domain.ValidationError{Field: "mulai", Msg: "format tanggal salah"}
	}
	if _, err := utils.ParseDate(sampai); err != nil {
		return nil, domain.ValidationError{Field: "sampai", Msg: "format tanggal salah"}
	}

	byDriver := map[int64]*RekapDriver{}
	get := func(id int64, nama string) *RekapDriver {
		if r, ok := byDriver[id]; ok {
			if r.DriverName == "" {
				r.DriverName = nama
			}
			return r
		}
		r := &RekapDriver{DriverID: id, DriverName: nama}
		byDriver[id] = r
		return r
	}

	premiList, err := s.premi().List(mulai, sampai, 0)
	if err != nil {
		return nil, err
	}
	for _, p := range premiList {
		r := get(p.DriverID, p.DriverName)
		r.JumlahPremi++
		r.TotalSetoran += p.Setoran
		r.TotalPremi += p.UangPremi
		r.TotalUangJalan += p.UangJalan
		r.TotalPotongan += p.TotalPotongan()
	}

	uangSakuList, err := s.uangSaku().List(mulai, sampai, 0)
	if err != nil {
		return nil, err
	}
	for _, u := range uangSakuList {
		r := get(u.DriverID, u.DriverName)
		r.TotalUangSaku += u.Jumlah
		if u.Status == models.UangSakuTerealisasi {
			r.TotalRealisasi += u.TotalRealisasi()
		}
	}

	berjalan, err := s.kasbon().List("", "", models.KasbonBerjalan, 0)
	if err != nil {
		return nil, err
	}
	for _, k := range berjalan {
		realisasi, err := s.kasbon().ListRealisasi(k.ID)
		if err != nil {
			return nil, err
		}
		var terealisasi int64
		for _, kr := range realisasi {
			terealisasi += kr.Jumlah
		}
		r := get(k.DriverID, k.DriverName)
		r.KasbonBerjalan += k.Jumlah - terealisasi
	}

	out := make([]RekapDriver, 0, len(byDriver))
	for _, r := range byDriver {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DriverName != out[j].DriverName {
			return out[i].DriverName < out[j].DriverName
		}
		return out[i].DriverID < out[j].DriverID
	})

	utils.LogEvent(s.RequestID, "reports", "rekap-driver",
		mulai+" s/d "+sampai)
	return out, nil
}
