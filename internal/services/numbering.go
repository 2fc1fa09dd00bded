package services

import (
	"fmt"
	"strconv"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/utils"
)

// Prefix dokumen per modul.
const (
	PrefixSuratJalan = "SJ"
	PrefixUangSaku   = "US"
	PrefixKasbon     = "KB"
	PrefixPremi      = "PR"
)

// DocNumberer membuat nomor dokumen harian PREFIX-YYYYMMDD-NNN.
// Last dan Count disuntik dari repo modul pemilik nomor supaya penomoran
// tiap modul jalan di tabelnya sendiri.
type DocNumberer struct {
	Prefix string
	Last   func(prefix string) (string, error)
	Count  func(noDoc string) (int, error)
}

// Preview menghitung nomor berikutnya tanpa reservasi. Dipakai form input;
// nomor final tetap dialokasi ulang saat simpan.
func (n DocNumberer) Preview(tanggal string) (string, error) {
	return n.next(tanggal)
}

// Allocate menghitung nomor berikutnya dan memastikan belum terpakai.
// Tidak ada constraint unik di server lama, jadi cek duplikatnya di sini,
// diulang paling banyak tiga kali kalau ada penulis lain menyerobot.
func (n DocNumberer) Allocate(tanggal string) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		noDoc, err := n.next(tanggal)
		if err != nil {
			return "", err
		}
		cnt, err := n.Count(noDoc)
		if err != nil {
			return "", err
		}
		if cnt == 0 {
			return noDoc, nil
		}
	}
	return "", domain.ConflictError{Resource: "nomor dokumen", Msg: "gagal alokasi setelah 3 percobaan"}
}

func (n DocNumberer) next(tanggal string) (string, error) {
	if strings.TrimSpace(tanggal) == "" {
		return "", domain.ValidationError{Field: "tanggal", Msg: "wajib diisi"}
	}
	prefix := fmt.Sprintf("%s-%s-", n.Prefix, utils.DateCompact(tanggal))

	last, err := n.Last(prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" {
		if v, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			seq = v + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}
