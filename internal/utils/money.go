package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah merender jumlah rupiah dengan pemisah ribuan.
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRp %s", sign, formatThousand(amount))
}

// ParseRupiahToInt membaca "Rp 1.000" atau "1,000" menjadi rupiah bulat.
func ParseRupiahToInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "rp")
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(".", "", ",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("jumlah rupiah tidak valid")
	}
	return strconv.ParseInt(s, 10, 64)
}

// HitungPremi menghitung uang premi = setoran x persen / 100, dibulatkan ke
// rupiah terdekat. Persen disimpan sebagai string DECIMAL(5,2) supaya tarif
// seperti 12.5% tidak kena pembulatan float.
func HitungPremi(setoran int64, persen string) (int64, error) {
	persen = strings.TrimSpace(persen)
	if persen == "" {
		return 0, nil
	}
	rate, err := decimal.NewFromString(persen)
	if err != nil {
		return 0, fmt.Errorf("persen premi tidak valid: %w", err)
	}
	if rate.IsNegative() {
		return 0, fmt.Errorf("persen premi tidak boleh negatif")
	}
	hasil := decimal.NewFromInt(setoran).Mul(rate).Div(decimal.NewFromInt(100))
	return hasil.Round(0).IntPart(), nil
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
