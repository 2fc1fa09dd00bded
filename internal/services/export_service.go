package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"backoffice/internal/utils"
)

// ExportService menghasilkan file Excel dari laporan yang sudah dibangun
// service lain. Tidak menyentuh DB sama sekali.
type ExportService struct {
	RequestID string
}

// LaporanKasExcel merender buku kas satu periode ke xlsx.
func (s ExportService) LaporanKasExcel(laporan LaporanKas) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Buku Kas"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "BUKU KAS HARIAN")
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("Periode %s s/d %s", laporan.Mulai, laporan.Sampai))
	_ = f.SetCellValue(sheet, "A3", "Saldo awal")
	_ = f.SetCellValue(sheet, "B3", laporan.SaldoAwal)

	headers := []string{"Tanggal", "Jam", "Keterangan", "Jenis", "Jumlah", "Saldo Awal", "Saldo Akhir", "Sumber"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 6
	for _, e := range laporan.Entri {
		values := []any{e.Tanggal, e.Jam, e.Keterangan, e.Jenis, e.Jumlah, e.SaldoAwal, e.SaldoAkhir, e.SumberTabel}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total debit")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), laporan.TotalDebit)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total kredit")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), laporan.TotalKredit)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Saldo akhir")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), laporan.SaldoAkhir)

	_ = f.SetColWidth(sheet, "A", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "D", "H", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BUKU_KAS_%s_%s.xlsx",
		utils.DateCompact(laporan.Mulai), utils.DateCompact(laporan.Sampai))
	utils.LogEvent(s.RequestID, "export", "laporan-kas-excel", filename)
	return buf.Bytes(), filename, nil
}

// RekapDriverExcel merender rekap per driver ke xlsx.
func (s ExportService) RekapDriverExcel(mulai, sampai string, rekap []RekapDriver) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Rekap Driver"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "REKAP DRIVER")
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("Periode %s s/d %s", mulai, sampai))

	headers := []string{"Driver", "Trip Premi", "Setoran", "Premi", "Uang Jalan",
		"Potongan", "Uang Saku", "Realisasi", "Kasbon Berjalan"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 5
	for _, r := range rekap {
		values := []any{r.DriverName, r.JumlahPremi, r.TotalSetoran, r.TotalPremi,
			r.TotalUangJalan, r.TotalPotongan, r.TotalUangSaku, r.TotalRealisasi, r.KasbonBerjalan}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "I", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("REKAP_DRIVER_%s_%s.xlsx", utils.DateCompact(mulai), utils.DateCompact(sampai))
	utils.LogEvent(s.RequestID, "export", "rekap-driver-excel", filename)
	return buf.Bytes(), filename, nil
}
