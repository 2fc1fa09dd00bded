package models

// Status kasbon.
const (
	KasbonBerjalan = "berjalan"
	KasbonLunas    = "lunas"
)

// Kasbon adalah pinjaman driver yang dipotong dari pembayaran berikutnya.
type Kasbon struct {
	ID         int64  `json:"id"`
	NoDoc      string `json:"noDoc"`
	Tanggal    string `json:"tanggal"`
	Jam        string `json:"jam"`
	DriverID   int64  `json:"driverId"`
	DriverName string `json:"driverName"`
	Jumlah     int64  `json:"jumlah"`
	Keterangan string `json:"keterangan"`
	Status     string `json:"status"`
	UserID     int64  `json:"userId"`
	CreatedAt  string `json:"createdAt"`
}

// KasbonRealisasi adalah satu pembayaran/pemotongan atas kasbon.
type KasbonRealisasi struct {
	ID         int64  `json:"id"`
	KasbonID   int64  `json:"kasbonId"`
	Tanggal    string `json:"tanggal"`
	Jumlah     int64  `json:"jumlah"`
	Keterangan string `json:"keterangan"`
	CreatedAt  string `json:"createdAt"`
}
