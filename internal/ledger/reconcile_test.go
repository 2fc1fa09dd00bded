package ledger

import (
	"testing"

	"backoffice/internal/domain/models"
)

// applyPlan mensimulasikan eksekusi plan terhadap store in-memory.
func applyPlan(stored []models.KasHarian, plan Plan, nextID int64) []models.KasHarian {
	out := []models.KasHarian{}
	for _, e := range stored {
		if contains(plan.Deletes, e.ID) {
			continue
		}
		updated := e
		for _, u := range plan.Updates {
			if u.ID == e.ID {
				updated = u
				break
			}
		}
		out = append(out, updated)
	}
	for _, ins := range plan.Inserts {
		ins.ID = nextID
		nextID++
		out = append(out, ins)
	}
	return out
}

func premiTol() models.Premi {
	return models.Premi{
		ID:         11,
		NoDoc:      "PR-20250105-002",
		DriverName: "Sari",
		Tanggal:    "2025-01-05",
		UangPremi:  100_000,
		Potongan:   []models.PotonganPremi{{Nama: "Tol", Jumlah: 5_000}},
	}
}

func TestBuildPlanTanpaEntriLamaJadiInsertSemua(t *testing.T) {
	drafts, err := DerivePremi(premiTol())
	if err != nil {
		t.Fatalf("DerivePremi error: %v", err)
	}
	src := SourceRef{Tabel: models.SumberPremi, ID: 11}
	plan := BuildPlan(nil, drafts, src, "2025-01-05", "10:00:00", 3)

	if len(plan.Deletes) != 0 || len(plan.Updates) != 0 {
		t.Fatalf("rekonsiliasi tanpa entri lama harus murni insert: %+v", plan)
	}
	if len(plan.Inserts) != len(drafts) {
		t.Fatalf("insert = %d, mau %d", len(plan.Inserts), len(drafts))
	}
	for i, ins := range plan.Inserts {
		if ins.Urutan != i+1 {
			t.Fatalf("urutan insert ke-%d = %d, mau %d", i, ins.Urutan, i+1)
		}
		if ins.Tanggal != "2025-01-05" || ins.Jam != "10:00:00" {
			t.Fatalf("baris baru harus pakai tanggal/jam transaksi: %+v", ins)
		}
		if ins.SumberTabel != models.SumberPremi || ins.SumberID != 11 || ins.UserID != 3 {
			t.Fatalf("atribusi sumber/user salah: %+v", ins)
		}
	}
}

func TestBuildPlanEditPotonganTidakGeserBarisLama(t *testing.T) {
	p := premiTol()
	drafts, _ := DerivePremi(p)
	src := SourceRef{Tabel: models.SumberPremi, ID: p.ID}
	stored := applyPlan(nil, BuildPlan(nil, drafts, src, "2025-01-05", "10:00:00", 3), 100)

	// edit: tambah potongan denda 2.000 di belakang tol
	p.Potongan = append(p.Potongan, models.PotonganPremi{Nama: "Denda", Jumlah: 2_000})
	drafts2, err := DerivePremi(p)
	if err != nil {
		t.Fatalf("DerivePremi error: %v", err)
	}
	plan := BuildPlan(stored, drafts2, src, "2025-01-06", "09:00:00", 3)

	if len(plan.Deletes) != 0 {
		t.Fatalf("tidak boleh ada delete: %+v", plan.Deletes)
	}
	if len(plan.Inserts) != 1 || plan.Inserts[0].LineRole != "potongan:denda" {
		t.Fatalf("mau satu insert potongan:denda, dapat %+v", plan.Inserts)
	}
	// baris tol lama tidak boleh tersentuh: tidak di update, tanggal/jam asli
	for _, u := range plan.Updates {
		if u.LineRole == "potongan:tol" {
			t.Fatalf("baris tol tidak berubah, tidak boleh masuk Updates: %+v", u)
		}
	}
	// baris baru meminjam tanggal/jam tetangga, bukan tanggal edit
	if plan.Inserts[0].Tanggal != "2025-01-05" || plan.Inserts[0].Jam != "10:00:00" {
		t.Fatalf("baris baru harus menempel tetangga: %+v", plan.Inserts[0])
	}

	hasil := applyPlan(stored, plan, 200)
	if len(hasil) != 3 {
		t.Fatalf("jumlah entri akhir = %d, mau 3", len(hasil))
	}
	// tidak ada duplikasi tol
	tol := 0
	for _, e := range hasil {
		if e.LineRole == "potongan:tol" {
			tol++
		}
	}
	if tol != 1 {
		t.Fatalf("baris tol terduplikasi: %d", tol)
	}
}

func TestBuildPlanSisipSebelumBlokRealisasi(t *testing.T) {
	p := models.Premi{
		ID: 21, NoDoc: "PR-2", DriverName: "Budi", UangPremi: 80_000,
		UangSaku: 20_000, RealisasiBBM: 20_000,
	}
	drafts, _ := DerivePremi(p)
	src := SourceRef{Tabel: models.SumberPremi, ID: p.ID}
	stored := applyPlan(nil, BuildPlan(nil, drafts, src, "2025-02-01", "08:00:00", 1), 300)

	// edit: tambah potongan, harus masuk sebelum blok realisasi (item:bbm)
	p.Potongan = []models.PotonganPremi{{Nama: "Tol", Jumlah: 4_000}}
	drafts2, _ := DerivePremi(p)
	plan := BuildPlan(stored, drafts2, src, "2025-02-02", "08:00:00", 1)

	hasil := applyPlan(stored, plan, 400)
	SortEntries(hasil)
	keys := []string{}
	for _, e := range hasil {
		keys = append(keys, e.LineRole)
	}
	want := []string{"pokok", "potongan:tol", "item:bbm"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("urutan akhir %v, mau %v", keys, want)
		}
	}
	for i, e := range hasil {
		if e.Urutan != i+1 {
			t.Fatalf("urutan harus rapat mulai 1: %+v", hasil)
		}
	}
}

func TestBuildPlanKonvergenKeTurunanBaru(t *testing.T) {
	p := premiTol()
	src := SourceRef{Tabel: models.SumberPremi, ID: p.ID}
	drafts, _ := DerivePremi(p)
	stored := applyPlan(nil, BuildPlan(nil, drafts, src, "2025-01-05", "10:00:00", 3), 500)

	// edit besar: premi berubah, tol hilang, ada uang jalan baru
	p.UangPremi = 90_000
	p.UangJalan = 30_000
	p.Potongan = nil
	drafts2, _ := DerivePremi(p)

	plan := BuildPlan(stored, drafts2, src, "2025-01-07", "11:00:00", 3)
	hasil := applyPlan(stored, plan, 600)
	SortEntries(hasil)

	if len(hasil) != len(drafts2) {
		t.Fatalf("jumlah entri akhir = %d, mau %d", len(hasil), len(drafts2))
	}
	byKey := map[string]models.KasHarian{}
	for _, e := range hasil {
		byKey[e.LineRole] = e
	}
	for _, d := range drafts2 {
		e, ok := byKey[d.Role.Key()]
		if !ok {
			t.Fatalf("kunci %s hilang dari hasil", d.Role.Key())
		}
		if e.Jumlah != d.Jumlah || e.Jenis != d.Jenis || e.Keterangan != d.Keterangan {
			t.Fatalf("entri %s tidak konvergen: %+v vs %+v", d.Role.Key(), e, d)
		}
	}
	// rekonsiliasi ulang terhadap hasil harus jadi no-op
	again := BuildPlan(hasil, drafts2, src, "2025-01-08", "12:00:00", 3)
	if !again.Empty() {
		t.Fatalf("rekonsiliasi ulang harus kosong: %+v", again)
	}
}

func TestBuildPlanHapusKunciKembar(t *testing.T) {
	p := premiTol()
	src := SourceRef{Tabel: models.SumberPremi, ID: p.ID}
	drafts, _ := DerivePremi(p)
	stored := applyPlan(nil, BuildPlan(nil, drafts, src, "2025-01-05", "10:00:00", 3), 700)

	// korupsi: baris pokok kembar hasil tulisan parsial lama
	ganda := stored[0]
	ganda.ID = 999
	ganda.Urutan = 9
	stored = append(stored, ganda)

	plan := BuildPlan(stored, drafts, src, "2025-01-09", "10:00:00", 3)
	if !contains(plan.Deletes, 999) {
		t.Fatalf("kunci kembar harus dihapus: %+v", plan.Deletes)
	}
	hasil := applyPlan(stored, plan, 800)
	if len(hasil) != len(drafts) {
		t.Fatalf("jumlah entri akhir = %d, mau %d", len(hasil), len(drafts))
	}
}
