package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

const tokenTTL = 12 * time.Hour

// Role yang dikenal back-office.
var knownRoles = []string{"owner", "admin", "kasir"}

// AuthService menangani login, pembuatan token, dan manajemen user.
type AuthService struct {
	UserRepo  repositories.UserRepository
	MenuRepo  repositories.MenuAccessRepository
	JWTSecret string
	DB        *sql.DB
	RequestID string
	Session   domain.Session
}

func (s AuthService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AuthService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.db()}
}

func (s AuthService) menu() repositories.MenuAccessRepository {
	if s.MenuRepo.DB != nil {
		return s.MenuRepo
	}
	return repositories.MenuAccessRepository{DB: s.db()}
}

func (s AuthService) secret() []byte {
	if s.JWTSecret != "" {
		return []byte(s.JWTSecret)
	}
	return []byte(intconfig.Loaded.JWTSecret)
}

// LoginResult dikirim balik ke client setelah login sukses.
type LoginResult struct {
	Token string              `json:"token"`
	User  models.User         `json:"user"`
	Menu  []models.MenuAccess `json:"menu"`
}

// Login memverifikasi kredensial dan menerbitkan JWT berumur 12 jam.
// Username salah dan password salah sengaja dibalas pesan yang sama.
func (s AuthService) Login(username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Field: "login", Msg: "username dan password wajib diisi"}
	}

	id, hash, err := s.users().GetPasswordHash(username)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.ValidationError{Field: "login", Msg: "username atau password salah"}
		}
		return LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return LoginResult{}, domain.ValidationError{Field: "login", Msg: "username atau password salah"}
	}

	user, err := s.users().GetByID(id)
	if err != nil {
		return LoginResult{}, err
	}
	if user.Status != "" && user.Status != "aktif" {
		return LoginResult{}, domain.ValidationError{Field: "login", Msg: "akun nonaktif"}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return LoginResult{}, err
	}
	menu, err := s.menu().ListByRole(user.Role)
	if err != nil {
		return LoginResult{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "login", user.Username)
	return LoginResult{Token: token, User: user, Menu: menu}, nil
}

func (s AuthService) issueToken(u models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"role":     u.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret())
}

// ParseToken memvalidasi JWT dan mengembalikan sesi user.
func (s AuthService) ParseToken(tokenStr string) (domain.Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode tanda tangan tidak dikenal")
		}
		return s.secret(), nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, domain.ValidationError{Field: "token", Msg: "token tidak valid"}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, domain.ValidationError{Field: "token", Msg: "token tidak valid"}
	}

	sess := domain.Session{}
	if v, ok := claims["sub"].(float64); ok {
		sess.UserID = int64(v)
	}
	if v, ok := claims["username"].(string); ok {
		sess.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		sess.Role = v
	}
	if !sess.Valid() {
		return domain.Session{}, domain.ValidationError{Field: "token", Msg: "token tidak lengkap"}
	}
	return sess, nil
}

// Register membuat user baru. Hanya untuk dipanggil dari handler yang sudah
// dibatasi role owner/admin.
func (s AuthService) Register(u models.User, password string) (models.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Nama = utils.NormalizeSpace(u.Nama)
	if u.Username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "wajib diisi"}
	}
	if len(password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "minimal 6 karakter"}
	}
	if !validRole(u.Role) {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "role tidak dikenal"}
	}
	if _, err := s.users().GetByUsername(u.Username); err == nil {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "username sudah dipakai"}
	} else if !domain.IsNotFound(err) {
		return models.User{}, err
	}
	if u.Status == "" {
		u.Status = "aktif"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	id, err := s.users().Insert(u, string(hash))
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	utils.LogEvent(s.RequestID, "auth", "register", u.Username)
	return u, nil
}

// GantiPassword mengganti password user lain (admin) atau diri sendiri.
func (s AuthService) GantiPassword(userID int64, password string) error {
	if len(password) < 6 {
		return domain.ValidationError{Field: "password", Msg: "minimal 6 karakter"}
	}
	if _, err := s.users().GetByID(userID); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users().UpdatePassword(userID, string(hash))
}

// MenuFor mengambil daftar menu satu role.
func (s AuthService) MenuFor(role string) ([]models.MenuAccess, error) {
	if !validRole(role) {
		return nil, domain.ValidationError{Field: "role", Msg: "role tidak dikenal"}
	}
	return s.menu().ListByRole(role)
}

// SetMenu menulis satu flag akses menu.
func (s AuthService) SetMenu(m models.MenuAccess) error {
	if !validRole(m.Role) {
		return domain.ValidationError{Field: "role", Msg: "role tidak dikenal"}
	}
	return s.menu().Upsert(m)
}

func validRole(role string) bool {
	for _, r := range knownRoles {
		if r == role {
			return true
		}
	}
	return false
}
