package ledger

import (
	"backoffice/internal/domain/models"
)

// SourceRef menunjuk transaksi sumber pemilik sekelompok entri kas.
type SourceRef struct {
	Tabel string
	ID    int64
}

// Plan adalah hasil diff antara entri tersimpan dan hasil penurunan baru.
// Urutan eksekusi oleh pemanggil: Deletes, Updates, lalu Inserts — tiap
// langkah tulisan jaringan terpisah tanpa transaksi.
type Plan struct {
	Deletes []int64            // id entri yang tidak lagi diturunkan
	Updates []models.KasHarian // entri lama dengan field mutable/urutan baru
	Inserts []models.KasHarian // entri baru, urutan sudah terisi
}

func (p Plan) Empty() bool {
	return len(p.Deletes) == 0 && len(p.Updates) == 0 && len(p.Inserts) == 0
}

// BuildPlan mencocokkan entri tersimpan milik src dengan drafts hasil
// penurunan terbaru, dikunci per LineRole:
//   - tersimpan tapi tak diturunkan lagi -> delete (termasuk kunci kembar);
//   - diturunkan tapi belum tersimpan -> insert, disisipkan sebelum blok
//     realisasi kalau ada, kalau tidak ditambahkan di belakang; tanggal/jam
//     baris baru meniru tetangganya supaya urutan kronologis stabil;
//   - ada di keduanya -> update keterangan/jenis/jumlah, tapi tanggal, jam,
//     dan created_at baris lama dipertahankan agar riwayat tidak bergeser.
//
// Setelah itu urutan per sumber dinomori ulang rapat mulai 1.
// tanggal/jam dipakai untuk baris baru saat belum ada entri sama sekali.
func BuildPlan(stored []models.KasHarian, drafts []EntryDraft, src SourceRef, tanggal, jam string, userID int64) Plan {
	lama := make([]models.KasHarian, len(stored))
	copy(lama, stored)
	SortEntries(lama)

	byKey := map[string]int{} // line_role -> index di lama
	dupes := []int64{}
	for i, e := range lama {
		if _, ok := byKey[e.LineRole]; ok {
			dupes = append(dupes, e.ID)
			continue
		}
		byKey[e.LineRole] = i
	}

	plan := Plan{Deletes: dupes}
	matched := map[string]bool{}

	// baris lama yang dipertahankan, urutan relatifnya tidak diubah
	kept := []models.KasHarian{}
	keptDirty := []bool{}
	newRows := []models.KasHarian{}

	for _, d := range drafts {
		key := d.Role.Key()
		if i, ok := byKey[key]; ok && !matched[key] {
			matched[key] = true
			row := lama[i]
			dirty := row.Keterangan != d.Keterangan || row.Jenis != d.Jenis || row.Jumlah != d.Jumlah
			row.Keterangan = d.Keterangan
			row.Jenis = d.Jenis
			row.Jumlah = d.Jumlah
			kept = append(kept, row)
			keptDirty = append(keptDirty, dirty)
			continue
		}
		newRows = append(newRows, models.KasHarian{
			Keterangan:  d.Keterangan,
			Jenis:       d.Jenis,
			Jumlah:      d.Jumlah,
			SumberTabel: src.Tabel,
			SumberID:    src.ID,
			LineRole:    key,
			UserID:      userID,
		})
	}

	// kept harus kembali ke urutan kronologis tersimpan, bukan urutan draft
	sortKeptWithFlags(kept, keptDirty)

	for _, e := range lama {
		if !matched[e.LineRole] && !contains(dupes, e.ID) {
			plan.Deletes = append(plan.Deletes, e.ID)
		}
	}

	// titik sisip baris baru: sebelum baris realisasi pertama yang bertahan
	insertAt := len(kept)
	for i, e := range kept {
		if ParseLineRole(e.LineRole).Role.IsRealisasiGroup() {
			insertAt = i
			break
		}
	}

	// baris baru meminjam tanggal/jam tetangga supaya sort kronologis stabil
	nTanggal, nJam := tanggal, jam
	if insertAt > 0 {
		nTanggal, nJam = kept[insertAt-1].Tanggal, kept[insertAt-1].Jam
	} else if len(kept) > 0 {
		nTanggal, nJam = kept[insertAt].Tanggal, kept[insertAt].Jam
	}
	for i := range newRows {
		newRows[i].Tanggal = nTanggal
		newRows[i].Jam = nJam
	}

	final := make([]models.KasHarian, 0, len(kept)+len(newRows))
	finalNew := make([]bool, 0, len(kept)+len(newRows))
	finalDirty := make([]bool, 0, len(kept)+len(newRows))
	for i := 0; i < insertAt; i++ {
		final = append(final, kept[i])
		finalNew = append(finalNew, false)
		finalDirty = append(finalDirty, keptDirty[i])
	}
	for _, r := range newRows {
		final = append(final, r)
		finalNew = append(finalNew, true)
		finalDirty = append(finalDirty, true)
	}
	for i := insertAt; i < len(kept); i++ {
		final = append(final, kept[i])
		finalNew = append(finalNew, false)
		finalDirty = append(finalDirty, keptDirty[i])
	}

	// penomoran ulang rapat per sumber, mulai 1
	for i := range final {
		urutan := i + 1
		if final[i].Urutan != urutan {
			final[i].Urutan = urutan
			finalDirty[i] = true
		}
		if finalNew[i] {
			plan.Inserts = append(plan.Inserts, final[i])
		} else if finalDirty[i] {
			plan.Updates = append(plan.Updates, final[i])
		}
	}
	return plan
}

// sortKeptWithFlags mengurutkan kept kronologis sambil menjaga slice dirty
// tetap sejalan indeksnya.
func sortKeptWithFlags(kept []models.KasHarian, dirty []bool) {
	for i := 0; i < len(kept); i++ {
		min := i
		for j := i + 1; j < len(kept); j++ {
			if entryLess(kept[j], kept[min]) {
				min = j
			}
		}
		if min != i {
			kept[i], kept[min] = kept[min], kept[i]
			dirty[i], dirty[min] = dirty[min], dirty[i]
		}
	}
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
