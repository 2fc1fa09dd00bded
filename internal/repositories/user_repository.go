package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userSelect = `
	SELECT id,
	       COALESCE(nama, ''),
	       COALESCE(username, ''),
	       COALESCE(email, ''),
	       COALESCE(telepon, ''),
	       COALESCE(role, ''),
	       COALESCE(status, ''),
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
	FROM users`

func scanUser(scan func(dest ...any) error) (models.User, error) {
	var u models.User
	err := scan(&u.ID, &u.Nama, &u.Username, &u.Email, &u.Telepon, &u.Role, &u.Status, &u.CreatedAt)
	return u, err
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(userSelect + ` ORDER BY username ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, fmt.Errorf("id tidak valid")
	}
	row := r.db().QueryRow(userSelect+` WHERE id=? LIMIT 1`, id)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("username kosong")
	}
	row := r.db().QueryRow(userSelect+` WHERE username=? LIMIT 1`, username)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// GetPasswordHash diambil terpisah supaya hash tidak ikut di SELECT umum.
func (r UserRepository) GetPasswordHash(username string) (int64, string, error) {
	var id int64
	var hash string
	err := r.db().QueryRow(`SELECT id, COALESCE(password, '') FROM users WHERE username=? LIMIT 1`,
		strings.TrimSpace(username)).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", domain.NotFoundError{Resource: "user"}
	}
	return id, hash, err
}

func (r UserRepository) Insert(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (nama, username, email, telepon, role, status, password, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, u.Nama, u.Username, u.Email, u.Telepon, u.Role, u.Status, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) Update(u models.User) error {
	if u.ID <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`
		UPDATE users SET nama=?, email=?, telepon=?, role=?, status=? WHERE id=?
	`, u.Nama, u.Email, u.Telepon, u.Role, u.Status, u.ID)
	return err
}

func (r UserRepository) UpdatePassword(id int64, passwordHash string) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	_, err := r.db().Exec(`UPDATE users SET password=? WHERE id=?`, passwordHash, id)
	return err
}

func (r UserRepository) Delete(id int64) error {
	if id <= 0 {
		return fmt.Errorf("id tidak valid")
	}
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// ---- menu_access ----

type MenuAccessRepository struct {
	DB *sql.DB
}

func (r MenuAccessRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MenuAccessRepository) ListByRole(role string) ([]models.MenuAccess, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(role, ''), COALESCE(menu_key, ''), COALESCE(allowed, 0)
		FROM menu_access
		WHERE role=?
		ORDER BY menu_key ASC
	`, strings.TrimSpace(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MenuAccess{}
	for rows.Next() {
		var m models.MenuAccess
		if err := rows.Scan(&m.ID, &m.Role, &m.MenuKey, &m.Allowed); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Upsert menulis satu flag akses menu per (role, menu_key).
func (r MenuAccessRepository) Upsert(m models.MenuAccess) error {
	if strings.TrimSpace(m.Role) == "" || strings.TrimSpace(m.MenuKey) == "" {
		return fmt.Errorf("role/menu_key kosong")
	}
	_, err := r.db().Exec(`
		INSERT INTO menu_access (role, menu_key, allowed)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE allowed=VALUES(allowed)
	`, m.Role, m.MenuKey, m.Allowed)
	return err
}
