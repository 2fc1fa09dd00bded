package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04:05"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate membaca YYYY-MM-DD di timezone lokal.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate memformat ke YYYY-MM-DD timezone lokal.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatTime memformat ke HH:MM:SS timezone lokal.
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(layoutTime)
}

// FormatDateTime memformat ke "YYYY-MM-DD HH:MM:SS" timezone lokal.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// DateCompact memformat tanggal ke YYYYMMDD untuk prefix nomor dokumen.
func DateCompact(tanggal string) string {
	t, err := ParseDate(tanggal)
	if err != nil {
		return strings.NewReplacer("-", "").Replace(strings.TrimSpace(tanggal))
	}
	return t.Format("20060102")
}
