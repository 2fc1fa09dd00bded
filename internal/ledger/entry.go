// Package ledger memuat logika inti buku kas harian: penurunan entri dari
// transaksi sumber, injeksi saldo berjalan, dan rekonsiliasi saat sumber
// diedit. Semua fungsi di package ini murni; penulisan ke DB dilakukan
// oleh services.LedgerService.
package ledger

import (
	"strings"
)

// Role adalah peran baris dalam proyeksi ledger sebuah transaksi sumber.
// Dipakai sebagai kunci identitas yang stabil saat rekonsiliasi, menggantikan
// pencocokan teks keterangan yang rapuh terhadap perubahan redaksi.
type Role string

const (
	RolePokok     Role = "pokok"      // nilai utama transaksi
	RoleUangJalan Role = "uang_jalan" // tunjangan jalan
	RolePotongan  Role = "potongan"   // potongan atas premi
	RoleRealisasi Role = "realisasi"  // total pemakaian uang saku
	RoleSisa      Role = "sisa"       // sisa tidak terpakai / belum terbayar
	RoleItem      Role = "item"       // pemakaian per kategori (bbm, makan, ...)
)

// LineRole adalah kunci identitas baris: peran + kualifier opsional
// (nama potongan atau kategori pemakaian).
type LineRole struct {
	Role      Role
	Qualifier string
}

// Key merender kunci yang disimpan di kolom line_role.
func (r LineRole) Key() string {
	if r.Qualifier == "" {
		return string(r.Role)
	}
	return string(r.Role) + ":" + r.Qualifier
}

// ParseLineRole membaca kembali kunci dari kolom line_role.
func ParseLineRole(key string) LineRole {
	role, qual, found := strings.Cut(key, ":")
	if !found {
		return LineRole{Role: Role(key)}
	}
	return LineRole{Role: Role(role), Qualifier: qual}
}

// IsRealisasiGroup menandai peran-peran blok realisasi. Baris baru hasil
// rekonsiliasi disisipkan sebelum blok ini supaya urutan dokumen tetap:
// nilai utama dan potongan dulu, realisasi belakangan.
func (r Role) IsRealisasiGroup() bool {
	switch r {
	case RoleRealisasi, RoleSisa, RoleItem:
		return true
	}
	return false
}

// EntryDraft adalah entri kas hasil penurunan yang belum dipersist.
type EntryDraft struct {
	Keterangan string
	Jenis      string // models.KasDebit | models.KasKredit
	Jumlah     int64
	Role       LineRole
}

// normalizeQualifier merapikan nama bebas menjadi kualifier kunci.
func normalizeQualifier(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	return strings.Trim(s, "-")
}
