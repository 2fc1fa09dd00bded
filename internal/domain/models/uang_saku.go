package models

// Status dokumen uang saku.
const (
	UangSakuDiberikan   = "diberikan"
	UangSakuTerealisasi = "terealisasi"
)

// UangSaku adalah uang jalan harian yang diberikan ke driver per trip.
// Kolom realisasi terisi saat driver menyetor bukti pemakaian.
type UangSaku struct {
	ID               int64  `json:"id"`
	NoDoc            string `json:"noDoc"`
	Tanggal          string `json:"tanggal"`
	Jam              string `json:"jam"`
	DriverID         int64  `json:"driverId"`
	DriverName       string `json:"driverName"`
	SuratJalanID     int64  `json:"suratJalanId"`
	Jumlah           int64  `json:"jumlah"`
	RealisasiBBM     int64  `json:"realisasiBbm"`
	RealisasiMakan   int64  `json:"realisasiMakan"`
	RealisasiParkir  int64  `json:"realisasiParkir"`
	RealisasiLainnya int64  `json:"realisasiLainnya"`
	Keterangan       string `json:"keterangan"`
	Status           string `json:"status"`
	UserID           int64  `json:"userId"`
	CreatedAt        string `json:"createdAt"`
}

// TotalRealisasi menjumlahkan seluruh kategori pemakaian.
func (u UangSaku) TotalRealisasi() int64 {
	return u.RealisasiBBM + u.RealisasiMakan + u.RealisasiParkir + u.RealisasiLainnya
}

// Sisa adalah uang saku yang tidak terpakai. Bisa negatif kalau input salah;
// deriver yang menolak kondisi itu.
func (u UangSaku) Sisa() int64 {
	return u.Jumlah - u.TotalRealisasi()
}
