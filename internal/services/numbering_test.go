package services

import (
	"testing"

	"backoffice/internal/domain"
)

func TestDocNumbererUrutanHarian(t *testing.T) {
	n := DocNumberer{
		Prefix: PrefixUangSaku,
		Last: func(prefix string) (string, error) {
			if prefix != "US-20250110-" {
				t.Fatalf("prefix salah: %s", prefix)
			}
			return "US-20250110-007", nil
		},
		Count: func(noDoc string) (int, error) { return 0, nil },
	}

	got, err := n.Allocate("2025-01-10")
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if got != "US-20250110-008" {
		t.Fatalf("nomor salah: %s", got)
	}
}

func TestDocNumbererMulaiDariSatu(t *testing.T) {
	n := DocNumberer{
		Prefix: PrefixKasbon,
		Last:   func(prefix string) (string, error) { return "", nil },
		Count:  func(noDoc string) (int, error) { return 0, nil },
	}
	got, err := n.Allocate("2025-03-01")
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if got != "KB-20250301-001" {
		t.Fatalf("nomor salah: %s", got)
	}
}

func TestDocNumbererPreviewTanpaReservasi(t *testing.T) {
	countCalls := 0
	n := DocNumberer{
		Prefix: PrefixSuratJalan,
		Last:   func(prefix string) (string, error) { return "SJ-20250110-002", nil },
		Count: func(noDoc string) (int, error) {
			countCalls++
			return 0, nil
		},
	}
	got, err := n.Preview("2025-01-10")
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if got != "SJ-20250110-003" {
		t.Fatalf("nomor salah: %s", got)
	}
	if countCalls != 0 {
		t.Fatalf("preview tidak boleh cek duplikat")
	}
}

func TestDocNumbererUlangSaatDiserobot(t *testing.T) {
	// penulis lain sudah memakai 003; Last berikutnya mengembalikan 003
	last := "SJ-20250110-002"
	n := DocNumberer{
		Prefix: PrefixSuratJalan,
		Last:   func(prefix string) (string, error) { return last, nil },
		Count: func(noDoc string) (int, error) {
			if noDoc == "SJ-20250110-003" {
				last = "SJ-20250110-003"
				return 1, nil
			}
			return 0, nil
		},
	}
	got, err := n.Allocate("2025-01-10")
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if got != "SJ-20250110-004" {
		t.Fatalf("nomor salah: %s", got)
	}
}

func TestDocNumbererMenyerahSetelahTigaKali(t *testing.T) {
	n := DocNumberer{
		Prefix: PrefixPremi,
		Last:   func(prefix string) (string, error) { return "", nil },
		Count:  func(noDoc string) (int, error) { return 1, nil },
	}
	_, err := n.Allocate("2025-01-10")
	if !domain.IsConflict(err) {
		t.Fatalf("harusnya ConflictError, dapat %v", err)
	}
}
