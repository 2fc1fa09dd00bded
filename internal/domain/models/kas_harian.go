package models

// Jenis transaksi kas. Debit menambah saldo, kredit mengurangi.
const (
	KasDebit  = "debit"
	KasKredit = "kredit"
)

// Sumber tabel yang diakui sebagai asal entri kas_harian.
const (
	SumberManual   = "manual"
	SumberUangSaku = "uang_saku"
	SumberPremi    = "premi"
	SumberKasbon   = "kasbon"
)

// KasHarian adalah satu baris buku kas harian.
// SaldoAwal/SaldoAkhir diisi ulang oleh ledger.InjectBalances saat dibaca;
// nilai tersimpan hanya cache tampilan terakhir.
type KasHarian struct {
	ID          int64  `json:"id"`
	Tanggal     string `json:"tanggal"` // YYYY-MM-DD
	Jam         string `json:"jam"`     // HH:MM:SS
	Keterangan  string `json:"keterangan"`
	Jenis       string `json:"jenis"` // debit | kredit
	Jumlah      int64  `json:"jumlah"`
	SaldoAwal   int64  `json:"saldoAwal"`
	SaldoAkhir  int64  `json:"saldoAkhir"`
	SumberTabel string `json:"sumberTabel"`
	SumberID    int64  `json:"sumberId"`
	LineRole    string `json:"lineRole"` // kunci identitas baris, mis. "potongan:tol"
	Urutan      int    `json:"urutan"`   // nomor urut per sumber, mulai 1
	UserID      int64  `json:"userId"`
	CreatedAt   string `json:"createdAt"`
}
