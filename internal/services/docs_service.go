package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// DocsService menghasilkan PDF surat jalan dan buku kas.
type DocsService struct {
	SuratJalanRepo repositories.SuratJalanRepository
	DB             *sql.DB
	RequestID      string

	// Loader bisa disuntik di test supaya tidak perlu DB.
	Loader func(int64) (models.SuratJalan, error)
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) repo() repositories.SuratJalanRepository {
	if s.SuratJalanRepo.DB != nil {
		return s.SuratJalanRepo
	}
	return repositories.SuratJalanRepository{DB: s.db()}
}

// SuratJalanPDF merender satu surat jalan jadi PDF siap cetak.
func (s DocsService) SuratJalanPDF(id int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.repo().GetByID
	}
	sj, err := load(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "surat-jalan-pdf", sj.NoDoc)
	return buildSuratJalanPDF(sj)
}

// LaporanKasPDF merender buku kas satu periode jadi PDF.
func (s DocsService) LaporanKasPDF(laporan LaporanKas) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "laporan-kas-pdf",
		fmt.Sprintf("%s s/d %s", laporan.Mulai, laporan.Sampai))
	return buildLaporanKasPDF(laporan)
}

func buildSuratJalanPDF(sj models.SuratJalan) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Surat Jalan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SURAT JALAN")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("No Dokumen  : %s", safe(sj.NoDoc, "-")),
		fmt.Sprintf("Tanggal/Jam : %s %s", safe(sj.Tanggal, "-"), safe(jamHM(sj.Jam), "-")),
		fmt.Sprintf("No Polisi   : %s", safe(sj.NoPolisi, "-")),
		fmt.Sprintf("Driver      : %s", safe(sj.DriverName, "-")),
		fmt.Sprintf("Rute        : %s -> %s", safe(sj.Asal, "-"), safe(sj.Tujuan, "-")),
		fmt.Sprintf("Muatan      : %s", safe(sj.Muatan, "-")),
		fmt.Sprintf("Status      : %s", safe(sj.Status, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if strings.TrimSpace(sj.Keterangan) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Keterangan: "+sj.Keterangan, "", "", false)
	}

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(63, 7, "Pengirim")
	pdf.Cell(63, 7, "Driver")
	pdf.Cell(63, 7, "Penerima")
	pdf.Ln(24)
	pdf.Cell(63, 7, "(..................)")
	pdf.Cell(63, 7, "(..................)")
	pdf.Cell(63, 7, "(..................)")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("SURAT_JALAN_%s.pdf", safeFilenamePart(sj.NoDoc))
	return buf.Bytes(), filename, nil
}

func buildLaporanKasPDF(laporan LaporanKas) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Buku Kas Harian", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, "BUKU KAS HARIAN")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Periode %s s/d %s", laporan.Mulai, laporan.Sampai))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Saldo awal: "+utils.FormatRupiah(laporan.SaldoAwal))
	pdf.Ln(9)

	widths := []float64{24, 16, 92, 18, 32, 32, 32}
	headers := []string{"Tanggal", "Jam", "Keterangan", "Jenis", "Jumlah", "Saldo Awal", "Saldo Akhir"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range laporan.Entri {
		cols := []string{
			e.Tanggal,
			jamHM(e.Jam),
			truncate(e.Keterangan, 60),
			e.Jenis,
			utils.FormatRupiah(e.Jumlah),
			utils.FormatRupiah(e.SaldoAwal),
			utils.FormatRupiah(e.SaldoAkhir),
		}
		for i, c := range cols {
			align := "L"
			if i >= 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total debit %s | Total kredit %s | Saldo akhir %s",
		utils.FormatRupiah(laporan.TotalDebit),
		utils.FormatRupiah(laporan.TotalKredit),
		utils.FormatRupiah(laporan.SaldoAkhir)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BUKU_KAS_%s_%s.pdf",
		utils.DateCompact(laporan.Mulai), utils.DateCompact(laporan.Sampai))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func jamHM(jam string) string {
	if len(jam) >= 5 {
		return jam[:5]
	}
	return jam
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format("20060102150405")
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
