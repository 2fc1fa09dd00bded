package utils

import "testing"

func TestHitungPremi(t *testing.T) {
	cases := []struct {
		setoran int64
		persen  string
		want    int64
	}{
		{1000000, "10", 100000},
		{1000000, "12.5", 125000},
		{333333, "10", 33333}, // 33333.3 dibulatkan ke bawah
		{333335, "10", 33334}, // 33333.5 dibulatkan ke atas
		{1000000, "", 0},
		{0, "10", 0},
	}
	for _, tc := range cases {
		got, err := HitungPremi(tc.setoran, tc.persen)
		if err != nil {
			t.Fatalf("HitungPremi(%d, %q) error: %v", tc.setoran, tc.persen, err)
		}
		if got != tc.want {
			t.Fatalf("HitungPremi(%d, %q) = %d, harusnya %d", tc.setoran, tc.persen, got, tc.want)
		}
	}
}

func TestHitungPremiInputSalah(t *testing.T) {
	if _, err := HitungPremi(1000, "abc"); err == nil {
		t.Fatalf("persen bukan angka harusnya error")
	}
	if _, err := HitungPremi(1000, "-5"); err == nil {
		t.Fatalf("persen negatif harusnya error")
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:       "Rp 0",
		1000:    "Rp 1.000",
		1234567: "Rp 1.234.567",
		-250000: "-Rp 250.000",
	}
	for in, want := range cases {
		if got := FormatRupiah(in); got != want {
			t.Fatalf("FormatRupiah(%d) = %q, harusnya %q", in, got, want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	cases := map[string]int64{
		"Rp 1.000": 1000,
		"1,000":    1000,
		"250000":   250000,
	}
	for in, want := range cases {
		got, err := ParseRupiahToInt(in)
		if err != nil {
			t.Fatalf("ParseRupiahToInt(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRupiahToInt(%q) = %d, harusnya %d", in, got, want)
		}
	}
	if _, err := ParseRupiahToInt(""); err == nil {
		t.Fatalf("string kosong harusnya error")
	}
}
