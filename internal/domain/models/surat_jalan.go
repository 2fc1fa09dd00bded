package models

// Status surat jalan.
const (
	SuratJalanDraft     = "draft"
	SuratJalanBerangkat = "berangkat"
	SuratJalanSelesai   = "selesai"
)

// SuratJalan adalah dokumen perintah jalan untuk satu armada + driver.
type SuratJalan struct {
	ID         int64  `json:"id"`
	NoDoc      string `json:"noDoc"`
	Tanggal    string `json:"tanggal"`
	Jam        string `json:"jam"`
	ArmadaID   int64  `json:"armadaId"`
	NoPolisi   string `json:"noPolisi"`
	DriverID   int64  `json:"driverId"`
	DriverName string `json:"driverName"`
	RuteID     int64  `json:"ruteId"`
	Asal       string `json:"asal"`
	Tujuan     string `json:"tujuan"`
	Muatan     string `json:"muatan"`
	Keterangan string `json:"keterangan"`
	Status     string `json:"status"` // draft | berangkat | selesai
	UserID     int64  `json:"userId"`
	CreatedAt  string `json:"createdAt"`
}
