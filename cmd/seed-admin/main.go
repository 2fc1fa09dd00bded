package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
)

// Seed akun owner pertama. Dipakai sekali saat setup instance baru:
//
//	go run ./cmd/seed-admin -username owner -password rahasia
func main() {
	username := flag.String("username", "owner", "username akun owner")
	password := flag.String("password", "", "password akun owner (wajib)")
	nama := flag.String("nama", "Owner", "nama tampil")
	flag.Parse()

	if len(*password) < 6 {
		log.Fatal("password wajib diisi, minimal 6 karakter")
	}

	env := intconfig.LoadEnv()
	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	repo := repositories.UserRepository{}
	if _, err := repo.GetByUsername(*username); err == nil {
		log.Fatalf("user %s sudah ada", *username)
	} else if !domain.IsNotFound(err) {
		log.Fatalf("gagal cek user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("gagal hash password: %v", err)
	}

	id, err := repo.Insert(models.User{
		Nama:     *nama,
		Username: *username,
		Role:     "owner",
		Status:   "aktif",
	}, string(hash))
	if err != nil {
		log.Fatalf("gagal insert user: %v", err)
	}
	log.Printf("akun owner %s dibuat (id %d)", *username, id)
}
