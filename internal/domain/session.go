package domain

// Session adalah identitas user yang memicu sebuah operasi.
// Selalu dioper eksplisit ke service, tidak pernah dibaca dari state global.
type Session struct {
	UserID   int64
	Username string
	Role     string
}

func (s Session) Valid() bool {
	return s.UserID > 0
}
