package models

// PotonganPremi adalah satu potongan atas premi driver (tol, denda, kasbon, dll).
type PotonganPremi struct {
	Nama   string `json:"nama"`
	Jumlah int64  `json:"jumlah"`
}

// Premi adalah pembayaran insentif driver, dihitung dari setoran trip
// dikali persen premi rute, dikurangi potongan.
type Premi struct {
	ID           int64           `json:"id"`
	NoDoc        string          `json:"noDoc"`
	Tanggal      string          `json:"tanggal"`
	Jam          string          `json:"jam"`
	DriverID     int64           `json:"driverId"`
	DriverName   string          `json:"driverName"`
	SuratJalanID int64           `json:"suratJalanId"`
	Setoran      int64           `json:"setoran"`
	PersenPremi  string          `json:"persenPremi"` // DECIMAL(5,2), mis. "10.50"
	UangPremi    int64           `json:"uangPremi"`   // hasil hitung, rupiah bulat
	UangJalan    int64           `json:"uangJalan"`
	Potongan     []PotonganPremi `json:"potongan"` // disimpan sebagai JSON
	// Penyelesaian uang saku trip yang dibayar bersama premi.
	UangSaku         int64  `json:"uangSaku"`
	RealisasiBBM     int64  `json:"realisasiBbm"`
	RealisasiMakan   int64  `json:"realisasiMakan"`
	RealisasiParkir  int64  `json:"realisasiParkir"`
	RealisasiLainnya int64  `json:"realisasiLainnya"`
	UserID           int64  `json:"userId"`
	CreatedAt        string `json:"createdAt"`
}

// TotalRealisasiUangSaku menjumlahkan pemakaian uang saku yang dilampirkan di premi.
func (p Premi) TotalRealisasiUangSaku() int64 {
	return p.RealisasiBBM + p.RealisasiMakan + p.RealisasiParkir + p.RealisasiLainnya
}

// TotalPotongan menjumlahkan seluruh potongan.
func (p Premi) TotalPotongan() int64 {
	var total int64
	for _, pot := range p.Potongan {
		total += pot.Jumlah
	}
	return total
}
