package ledger

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func TestDeriveKasbonTerealisasiSebagian(t *testing.T) {
	k := models.Kasbon{ID: 7, NoDoc: "KB-20250101-001", DriverName: "Budi", Jumlah: 100_000}
	real := []models.KasbonRealisasi{
		{KasbonID: 7, Jumlah: 60_000},
		{KasbonID: 7, Jumlah: 30_000},
	}

	drafts, err := DeriveKasbon(k, real)
	if err != nil {
		t.Fatalf("DeriveKasbon error: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("jumlah draft = %d, mau 2", len(drafts))
	}
	if drafts[0].Jumlah != 90_000 || drafts[0].Role.Key() != "pokok" || drafts[0].Jenis != models.KasKredit {
		t.Fatalf("draft pokok salah: %+v", drafts[0])
	}
	if drafts[1].Jumlah != 10_000 || drafts[1].Role.Key() != "sisa" || drafts[1].Jenis != models.KasKredit {
		t.Fatalf("draft sisa salah: %+v", drafts[1])
	}

	// proyeksi kasbon dari saldo 0 harus berakhir -100.000 (kas keluar)
	entries := draftsToEntries(drafts, "kasbon", 7, "2025-01-01", "08:00:00")
	injected := InjectBalances(entries, 0)
	if got := injected[len(injected)-1].SaldoAkhir; got != -100_000 {
		t.Fatalf("saldo akhir = %d, mau -100000", got)
	}
}

func TestDeriveKasbonMenolakOverRealisasi(t *testing.T) {
	k := models.Kasbon{NoDoc: "KB-1", Jumlah: 50_000}
	real := []models.KasbonRealisasi{{Jumlah: 60_000}}
	if _, err := DeriveKasbon(k, real); !domain.IsValidation(err) {
		t.Fatalf("mau ValidationError, dapat %v", err)
	}
}

func TestDeriveUangSakuSebagian(t *testing.T) {
	u := models.UangSaku{
		NoDoc:           "US-20250102-003",
		Jumlah:          50_000,
		RealisasiBBM:    20_000,
		RealisasiMakan:  15_000,
		RealisasiParkir: 10_000,
		Status:          models.UangSakuTerealisasi,
	}

	drafts, err := DeriveUangSaku(u)
	if err != nil {
		t.Fatalf("DeriveUangSaku error: %v", err)
	}
	// debit realisasi 45k, debit sisa 5k, kredit bbm/makan/parkir
	if len(drafts) != 5 {
		t.Fatalf("jumlah draft = %d, mau 5", len(drafts))
	}
	if drafts[0].Role.Key() != "realisasi" || drafts[0].Jumlah != 45_000 || drafts[0].Jenis != models.KasDebit {
		t.Fatalf("draft realisasi salah: %+v", drafts[0])
	}
	if drafts[1].Role.Key() != "sisa" || drafts[1].Jumlah != 5_000 || drafts[1].Jenis != models.KasDebit {
		t.Fatalf("draft sisa salah: %+v", drafts[1])
	}
	wantItem := map[string]int64{"item:bbm": 20_000, "item:makan": 15_000, "item:parkir": 10_000}
	for _, d := range drafts[2:] {
		if d.Jenis != models.KasKredit {
			t.Fatalf("item harus kredit: %+v", d)
		}
		if wantItem[d.Role.Key()] != d.Jumlah {
			t.Fatalf("item %s = %d, mau %d", d.Role.Key(), d.Jumlah, wantItem[d.Role.Key()])
		}
	}
}

func TestDeriveUangSakuPenuhNolBersih(t *testing.T) {
	u := models.UangSaku{
		NoDoc:          "US-1",
		Jumlah:         50_000,
		RealisasiBBM:   30_000,
		RealisasiMakan: 20_000,
		Status:         models.UangSakuTerealisasi,
	}
	drafts, err := DeriveUangSaku(u)
	if err != nil {
		t.Fatalf("DeriveUangSaku error: %v", err)
	}
	var net int64
	for _, d := range drafts {
		if d.Jenis == models.KasDebit {
			net += d.Jumlah
		} else {
			net -= d.Jumlah
		}
		if d.Role.Key() == "sisa" {
			t.Fatalf("terealisasi penuh tidak boleh punya baris sisa")
		}
	}
	if net != 0 {
		t.Fatalf("efek bersih = %d, mau 0", net)
	}
}

func TestDeriveUangSakuMenolakSisaNegatif(t *testing.T) {
	u := models.UangSaku{
		NoDoc:        "US-2",
		Jumlah:       10_000,
		RealisasiBBM: 15_000,
		Status:       models.UangSakuTerealisasi,
	}
	if _, err := DeriveUangSaku(u); !domain.IsValidation(err) {
		t.Fatalf("mau ValidationError, dapat %v", err)
	}
}

func TestDeriveUangSakuBelumRealisasiKosong(t *testing.T) {
	u := models.UangSaku{NoDoc: "US-3", Jumlah: 40_000, Status: models.UangSakuDiberikan}
	drafts, err := DeriveUangSaku(u)
	if err != nil {
		t.Fatalf("DeriveUangSaku error: %v", err)
	}
	if len(drafts) != 0 {
		t.Fatalf("uang saku belum realisasi tidak boleh punya proyeksi, dapat %d draft", len(drafts))
	}
}

func TestDerivePremiLengkap(t *testing.T) {
	p := models.Premi{
		NoDoc:      "PR-20250103-001",
		DriverName: "Budi",
		UangPremi:  120_000,
		UangJalan:  50_000,
		Potongan: []models.PotonganPremi{
			{Nama: "Tol", Jumlah: 5_000},
			{Nama: "Denda", Jumlah: 0}, // nol dibuang
		},
		UangSaku:     30_000,
		RealisasiBBM: 30_000,
	}
	drafts, err := DerivePremi(p)
	if err != nil {
		t.Fatalf("DerivePremi error: %v", err)
	}
	keys := []string{}
	for _, d := range drafts {
		keys = append(keys, d.Role.Key())
	}
	want := []string{"pokok", "uang_jalan", "potongan:tol", "item:bbm"}
	if len(keys) != len(want) {
		t.Fatalf("kunci = %v, mau %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("kunci[%d] = %s, mau %s", i, keys[i], want[i])
		}
	}
}

func TestDerivePremiPotonganKembarTetapUnik(t *testing.T) {
	p := models.Premi{
		NoDoc:     "PR-1",
		UangPremi: 10_000,
		Potongan: []models.PotonganPremi{
			{Nama: "Tol", Jumlah: 5_000},
			{Nama: "Tol", Jumlah: 3_000},
		},
	}
	drafts, err := DerivePremi(p)
	if err != nil {
		t.Fatalf("DerivePremi error: %v", err)
	}
	seen := map[string]bool{}
	for _, d := range drafts {
		if seen[d.Role.Key()] {
			t.Fatalf("kunci kembar: %s", d.Role.Key())
		}
		seen[d.Role.Key()] = true
	}
}

// draftsToEntries membantu test: mem-persist draft secara in-memory.
func draftsToEntries(drafts []EntryDraft, tabel string, sumberID int64, tanggal, jam string) []models.KasHarian {
	out := make([]models.KasHarian, 0, len(drafts))
	for i, d := range drafts {
		out = append(out, models.KasHarian{
			ID:          int64(i + 1),
			Tanggal:     tanggal,
			Jam:         jam,
			Keterangan:  d.Keterangan,
			Jenis:       d.Jenis,
			Jumlah:      d.Jumlah,
			SumberTabel: tabel,
			SumberID:    sumberID,
			LineRole:    d.Role.Key(),
			Urutan:      i + 1,
		})
	}
	return out
}
