package models

// User akun back-office.
type User struct {
	ID        int64  `json:"id"`
	Nama      string `json:"nama"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Telepon   string `json:"telepon"`
	Role      string `json:"role"` // owner | admin | kasir
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// MenuAccess memetakan role ke menu yang boleh dibuka.
type MenuAccess struct {
	ID      int64  `json:"id"`
	Role    string `json:"role"`
	MenuKey string `json:"menuKey"`
	Allowed bool   `json:"allowed"`
}
