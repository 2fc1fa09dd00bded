package ledger

import (
	"reflect"
	"testing"

	"backoffice/internal/domain/models"
)

func sampleEntries() []models.KasHarian {
	return []models.KasHarian{
		{ID: 3, Tanggal: "2025-01-02", Jam: "09:00:00", Jenis: models.KasKredit, Jumlah: 40_000, Urutan: 1},
		{ID: 1, Tanggal: "2025-01-01", Jam: "08:00:00", Jenis: models.KasDebit, Jumlah: 100_000, Urutan: 1},
		{ID: 2, Tanggal: "2025-01-01", Jam: "08:00:00", Jenis: models.KasKredit, Jumlah: 25_000, Urutan: 2},
		{ID: 4, Tanggal: "2025-01-03", Jam: "07:30:00", Jenis: models.KasDebit, Jumlah: 10_000, Urutan: 1},
	}
}

func TestInjectBalancesKontinuitas(t *testing.T) {
	injected := InjectBalances(sampleEntries(), 50_000)

	if injected[0].SaldoAwal != 50_000 {
		t.Fatalf("saldo awal entri pertama = %d, mau 50000", injected[0].SaldoAwal)
	}
	for i, e := range injected {
		want := e.SaldoAwal - e.Jumlah
		if e.Jenis == models.KasDebit {
			want = e.SaldoAwal + e.Jumlah
		}
		if e.SaldoAkhir != want {
			t.Fatalf("entri %d: saldo_akhir = %d, mau %d", i, e.SaldoAkhir, want)
		}
		if i > 0 && e.SaldoAwal != injected[i-1].SaldoAkhir {
			t.Fatalf("entri %d: saldo_awal %d tidak sambung dengan saldo_akhir sebelumnya %d",
				i, e.SaldoAwal, injected[i-1].SaldoAkhir)
		}
	}
	// 50000 +100000 -25000 -40000 +10000
	if got := injected[len(injected)-1].SaldoAkhir; got != 95_000 {
		t.Fatalf("saldo akhir = %d, mau 95000", got)
	}
}

func TestInjectBalancesIdempoten(t *testing.T) {
	in := sampleEntries()
	a := InjectBalances(in, 10_000)
	b := InjectBalances(in, 10_000)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("dua kali inject menghasilkan keluaran berbeda")
	}
	// inject ulang di atas hasil inject juga harus identik
	c := InjectBalances(a, 10_000)
	if !reflect.DeepEqual(a, c) {
		t.Fatalf("inject di atas hasil inject berubah")
	}
}

func TestInjectBalancesTidakMutasiInput(t *testing.T) {
	in := sampleEntries()
	asal := make([]models.KasHarian, len(in))
	copy(asal, in)
	_ = InjectBalances(in, 0)
	if !reflect.DeepEqual(in, asal) {
		t.Fatalf("input ikut termutasi")
	}
}

func TestOpeningBalance(t *testing.T) {
	entries := sampleEntries()

	// sebelum 2025-01-02: hanya dua entri 1 Jan -> 0 +100000 -25000
	if got := OpeningBalance(entries, "2025-01-02", 0); got != 75_000 {
		t.Fatalf("saldo awal periode = %d, mau 75000", got)
	}
	// tidak ada entri sebelum periode -> saldo awal yang diberikan
	if got := OpeningBalance(entries, "2024-12-01", 0); got != 0 {
		t.Fatalf("saldo awal periode kosong = %d, mau 0", got)
	}
	if got := OpeningBalance(nil, "2025-01-01", 7); got != 7 {
		t.Fatalf("saldo awal tanpa entri = %d, mau 7", got)
	}
}
