package ledger

import (
	"sort"

	"backoffice/internal/domain/models"
)

// entryLess mengurutkan kronologis: tanggal, jam, urutan, lalu id sebagai
// pemecah seri supaya urutan deterministik.
func entryLess(a, b models.KasHarian) bool {
	if a.Tanggal != b.Tanggal {
		return a.Tanggal < b.Tanggal
	}
	if a.Jam != b.Jam {
		return a.Jam < b.Jam
	}
	if a.Urutan != b.Urutan {
		return a.Urutan < b.Urutan
	}
	return a.ID < b.ID
}

// SortEntries mengurutkan in-place secara kronologis.
func SortEntries(entries []models.KasHarian) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j])
	})
}

// InjectBalances mengembalikan salinan terurut dengan saldo_awal/saldo_akhir
// terisi. Debit menambah saldo, kredit mengurangi. Fungsi ini tidak menyentuh
// storage dan idempoten: dua kali jalan pada input yang sama menghasilkan
// keluaran identik.
func InjectBalances(entries []models.KasHarian, saldoAwal int64) []models.KasHarian {
	out := make([]models.KasHarian, len(entries))
	copy(out, entries)
	SortEntries(out)

	running := saldoAwal
	for i := range out {
		out[i].SaldoAwal = running
		if out[i].Jenis == models.KasDebit {
			out[i].SaldoAkhir = running + out[i].Jumlah
		} else {
			out[i].SaldoAkhir = running - out[i].Jumlah
		}
		running = out[i].SaldoAkhir
	}
	return out
}

// OpeningBalance menghitung saldo awal sebuah periode laporan:
// saldo_akhir entri terakhir yang tanggalnya sebelum mulai, atau saldoAwal
// kalau belum ada entri sama sekali sebelum periode itu.
func OpeningBalance(entries []models.KasHarian, mulai string, saldoAwal int64) int64 {
	injected := InjectBalances(entries, saldoAwal)
	opening := saldoAwal
	for _, e := range injected {
		if e.Tanggal >= mulai {
			break
		}
		opening = e.SaldoAkhir
	}
	return opening
}
