package ledger

import (
	"fmt"
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// Kategori pemakaian uang saku, urutan tetap supaya hasil penurunan stabil.
var kategoriRealisasi = []string{"bbm", "makan", "parkir", "lainnya"}

// DerivePremi menurunkan entri kas untuk satu dokumen premi:
// kredit premi, kredit uang jalan, debit per potongan, lalu blok penyelesaian
// uang saku (debit sisa + kredit per kategori) bila premi membawa uang saku.
// Komponen bernilai nol dibuang. Sisa negatif berarti salah input dan ditolak
// sebelum ada yang dipersist.
func DerivePremi(p models.Premi) ([]EntryDraft, error) {
	if p.UangPremi < 0 {
		return nil, domain.ValidationError{Field: "uang_premi", Msg: "tidak boleh negatif"}
	}
	if p.UangJalan < 0 {
		return nil, domain.ValidationError{Field: "uang_jalan", Msg: "tidak boleh negatif"}
	}

	drafts := []EntryDraft{}
	if p.UangPremi > 0 {
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Premi driver %s %s", p.DriverName, p.NoDoc),
			Jenis:      models.KasKredit,
			Jumlah:     p.UangPremi,
			Role:       LineRole{Role: RolePokok},
		})
	}
	if p.UangJalan > 0 {
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Uang jalan %s", p.NoDoc),
			Jenis:      models.KasKredit,
			Jumlah:     p.UangJalan,
			Role:       LineRole{Role: RoleUangJalan},
		})
	}

	seen := map[string]int{}
	for i, pot := range p.Potongan {
		if pot.Jumlah < 0 {
			return nil, domain.ValidationError{Field: "potongan", Msg: fmt.Sprintf("%s tidak boleh negatif", pot.Nama)}
		}
		if pot.Jumlah == 0 {
			continue
		}
		qual := normalizeQualifier(pot.Nama)
		if qual == "" {
			qual = strconv.Itoa(i + 1)
		}
		// nama potongan kembar tetap harus punya kunci unik
		seen[qual]++
		if n := seen[qual]; n > 1 {
			qual = qual + "-" + strconv.Itoa(n)
		}
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Potongan %s %s", pot.Nama, p.NoDoc),
			Jenis:      models.KasDebit,
			Jumlah:     pot.Jumlah,
			Role:       LineRole{Role: RolePotongan, Qualifier: qual},
		})
	}

	if p.UangSaku > 0 || p.TotalRealisasiUangSaku() > 0 {
		blok, err := deriveRealisasiBlok(p.NoDoc, p.UangSaku, false,
			p.RealisasiBBM, p.RealisasiMakan, p.RealisasiParkir, p.RealisasiLainnya)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, blok...)
	}
	return drafts, nil
}

// DeriveUangSaku menurunkan entri kas untuk realisasi uang saku yang berdiri
// sendiri. Uang saku yang belum terealisasi belum punya proyeksi ledger.
// Untuk uang saku yang terealisasi penuh, debit realisasi persis menutup
// kredit per kategori (efek bersih nol).
func DeriveUangSaku(u models.UangSaku) ([]EntryDraft, error) {
	if u.Status != models.UangSakuTerealisasi {
		return nil, nil
	}
	if u.Jumlah < 0 {
		return nil, domain.ValidationError{Field: "jumlah", Msg: "tidak boleh negatif"}
	}
	return deriveRealisasiBlok(u.NoDoc, u.Jumlah, true,
		u.RealisasiBBM, u.RealisasiMakan, u.RealisasiParkir, u.RealisasiLainnya)
}

// deriveRealisasiBlok membentuk blok penyelesaian uang saku:
// debit total realisasi (hanya untuk dokumen uang saku mandiri),
// debit sisa yang dikembalikan, kredit pemakaian per kategori.
func deriveRealisasiBlok(noDoc string, uangSaku int64, withTotal bool, bbm, makan, parkir, lainnya int64) ([]EntryDraft, error) {
	jumlah := []int64{bbm, makan, parkir, lainnya}
	var total int64
	for i, v := range jumlah {
		if v < 0 {
			return nil, domain.ValidationError{Field: "realisasi", Msg: fmt.Sprintf("%s tidak boleh negatif", kategoriRealisasi[i])}
		}
		total += v
	}
	sisa := uangSaku - total
	if sisa < 0 {
		return nil, domain.ValidationError{Field: "realisasi", Msg: "melebihi uang saku"}
	}

	drafts := []EntryDraft{}
	if withTotal && total > 0 {
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Realisasi uang saku %s", noDoc),
			Jenis:      models.KasDebit,
			Jumlah:     total,
			Role:       LineRole{Role: RoleRealisasi},
		})
	}
	if sisa > 0 {
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Sisa uang saku %s", noDoc),
			Jenis:      models.KasDebit,
			Jumlah:     sisa,
			Role:       LineRole{Role: RoleSisa},
		})
	}
	for i, v := range jumlah {
		if v == 0 {
			continue
		}
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Realisasi %s %s", kategoriRealisasi[i], noDoc),
			Jenis:      models.KasKredit,
			Jumlah:     v,
			Role:       LineRole{Role: RoleItem, Qualifier: kategoriRealisasi[i]},
		})
	}
	return drafts, nil
}

// DeriveKasbon menurunkan entri kas untuk kasbon beserta realisasinya:
// kredit sebesar porsi yang sudah terealisasi dan kredit sisa yang belum.
// Kas keluar totalnya selalu sebesar pokok kasbon. Realisasi yang melebihi
// pokok ditolak; pemaafan kasbon belum pernah jadi fitur yang disengaja.
func DeriveKasbon(k models.Kasbon, realisasi []models.KasbonRealisasi) ([]EntryDraft, error) {
	if k.Jumlah <= 0 {
		return nil, domain.ValidationError{Field: "jumlah", Msg: "harus lebih dari nol"}
	}
	var terealisasi int64
	for _, r := range realisasi {
		if r.Jumlah < 0 {
			return nil, domain.ValidationError{Field: "realisasi", Msg: "tidak boleh negatif"}
		}
		terealisasi += r.Jumlah
	}
	sisa := k.Jumlah - terealisasi
	if sisa < 0 {
		return nil, domain.ValidationError{Field: "realisasi", Msg: "melebihi jumlah kasbon"}
	}

	drafts := []EntryDraft{}
	if terealisasi > 0 {
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Kasbon %s %s", k.NoDoc, k.DriverName),
			Jenis:      models.KasKredit,
			Jumlah:     terealisasi,
			Role:       LineRole{Role: RolePokok},
		})
	}
	if sisa > 0 {
		drafts = append(drafts, EntryDraft{
			Keterangan: fmt.Sprintf("Sisa kasbon %s", k.NoDoc),
			Jenis:      models.KasKredit,
			Jumlah:     sisa,
			Role:       LineRole{Role: RoleSisa},
		})
	}
	return drafts, nil
}
