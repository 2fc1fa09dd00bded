package services

import (
	"testing"

	"backoffice/internal/domain/models"
)

func TestSuratJalanPDF(t *testing.T) {
	loader := func(id int64) (models.SuratJalan, error) {
		return models.SuratJalan{
			ID:         id,
			NoDoc:      "SJ-20250110-001",
			Tanggal:    "2025-01-10",
			Jam:        "07:30:00",
			NoPolisi:   "BK 1234 AA",
			DriverName: "Budi",
			Asal:       "Medan",
			Tujuan:     "Siantar",
			Muatan:     "Sparepart",
			Status:     models.SuratJalanBerangkat,
		}, nil
	}

	svc := DocsService{Loader: loader}
	pdf, filename, err := svc.SuratJalanPDF(1)
	if err != nil {
		t.Fatalf("SuratJalanPDF error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("PDF kosong")
	}
	if filename != "SURAT_JALAN_SJ-20250110-001.pdf" {
		t.Fatalf("nama file salah: %s", filename)
	}
}

func TestLaporanKasPDF(t *testing.T) {
	laporan := LaporanKas{
		Mulai:       "2025-01-01",
		Sampai:      "2025-01-31",
		SaldoAwal:   500000,
		SaldoAkhir:  350000,
		TotalDebit:  100000,
		TotalKredit: 250000,
		Entri: []models.KasHarian{
			{Tanggal: "2025-01-10", Jam: "08:00:00", Keterangan: "Setoran", Jenis: models.KasDebit, Jumlah: 100000, SaldoAwal: 500000, SaldoAkhir: 600000},
			{Tanggal: "2025-01-11", Jam: "09:00:00", Keterangan: "Kasbon KB-20250111-001", Jenis: models.KasKredit, Jumlah: 250000, SaldoAwal: 600000, SaldoAkhir: 350000},
		},
	}

	pdf, filename, err := DocsService{}.LaporanKasPDF(laporan)
	if err != nil {
		t.Fatalf("LaporanKasPDF error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("hasil kosong")
	}
}
