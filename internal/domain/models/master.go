package models

// Armada adalah satu kendaraan dalam fleet.
type Armada struct {
	ID        int64  `json:"id"`
	Kode      string `json:"kode"`
	NoPolisi  string `json:"noPolisi"`
	Jenis     string `json:"jenis"`
	Tahun     int    `json:"tahun"`
	Status    string `json:"status"` // aktif | perbaikan | nonaktif
	CreatedAt string `json:"createdAt"`
}

// Driver master data.
type Driver struct {
	ID        int64  `json:"id"`
	Nama      string `json:"nama"`
	Telepon   string `json:"telepon"`
	Alamat    string `json:"alamat"`
	NoSIM     string `json:"noSim"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Rute menyimpan tarif default per rute: persen premi dari setoran
// dan uang jalan standar.
type Rute struct {
	ID          int64  `json:"id"`
	Asal        string `json:"asal"`
	Tujuan      string `json:"tujuan"`
	JarakKM     int    `json:"jarakKm"`
	PersenPremi string `json:"persenPremi"` // DECIMAL(5,2)
	UangJalan   int64  `json:"uangJalan"`
	CreatedAt   string `json:"createdAt"`
}
