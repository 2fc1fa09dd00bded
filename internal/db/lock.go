package db

import (
	"context"
	"database/sql"
	"time"

	"backoffice/internal/domain"
)

// AdvisoryLock menserialisasi urutan tulis rekonsiliasi per transaksi sumber
// memakai named lock MySQL (GET_LOCK). Lock menempel pada koneksi, jadi satu
// koneksi dipin dari pool selama lock dipegang.
type AdvisoryLock struct {
	DB *sql.DB
}

// Acquire mengambil lock bernama key, menunggu paling lama timeout.
// Mengembalikan fungsi release yang wajib dipanggil (biasanya via defer).
func (l AdvisoryLock) Acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	conn, err := l.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var got sql.NullInt64
	err = conn.QueryRowContext(ctx, `SELECT GET_LOCK(?, ?)`, key, int64(timeout.Seconds())).Scan(&got)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if !got.Valid || got.Int64 != 1 {
		_ = conn.Close()
		return nil, domain.ConflictError{Resource: key, Msg: "sedang direkonsiliasi proses lain"}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		var ignored sql.NullInt64
		_ = conn.QueryRowContext(ctx, `SELECT RELEASE_LOCK(?)`, key).Scan(&ignored)
		_ = conn.Close()
	}
	return release, nil
}
