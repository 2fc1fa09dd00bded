package models

// ActivityLog merekam snapshot mentah sebelum/sesudah untuk mutasi keuangan.
type ActivityLog struct {
	ID          int64  `json:"id"`
	Modul       string `json:"modul"`
	Aksi        string `json:"aksi"`
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	DataSebelum string `json:"dataSebelum"` // JSON
	DataSesudah string `json:"dataSesudah"` // JSON
	CreatedAt   string `json:"createdAt"`
}

// Status intent rekonsiliasi.
const (
	IntentPending = "pending"
	IntentDone    = "done"
)

// ReconIntent dicatat sebelum urutan tulis rekonsiliasi dimulai.
// Intent yang tertinggal pending menandakan tulisan parsial yang perlu
// diperiksa manual.
type ReconIntent struct {
	ID          string `json:"id"` // uuid
	SumberTabel string `json:"sumberTabel"`
	SumberID    int64  `json:"sumberId"`
	Ringkasan   string `json:"ringkasan"` // JSON ringkas rencana tulis
	Status      string `json:"status"`
	RequestID   string `json:"requestId"`
	UserID      int64  `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	DoneAt      string `json:"doneAt"`
}
