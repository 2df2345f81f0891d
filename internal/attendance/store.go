package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
)

type DBTX interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type Store struct{ db DBTX }

func NewStore(db DBTX) *Store { return &Store{db: db} }

const selectCols = `id, employee_name, client_name, log_type, timestamp, date, time`

// Insert: 1打刻=1行。戻り値は採番されたid。
func (s *Store) Insert(ctx context.Context, l Log) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO attendance_logs (employee_name, client_name, log_type, timestamp, date, time)
	VALUES (?, ?, ?, ?, ?, ?)`,
		l.EmployeeName, l.ClientName, l.LogType, l.Timestamp, l.Date, l.Time,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List: 条件に応じて動的WHERE。ページングなしで全件返す。
// 日付範囲は timestamp の先頭10文字（YYYY-MM-DD）を両端含みで比較する。
// SQLiteの DATE() はオフセット付き文字列をUTCへ変換してしまうため使わない。
func (s *Store) List(ctx context.Context, f Filter) ([]Log, error) {
	var (
		buf    bytes.Buffer
		args   []any
		wheres []string
	)

	buf.WriteString(`SELECT ` + selectCols + ` FROM attendance_logs`)

	if f.Employee != nil && *f.Employee != "" {
		wheres = append(wheres, "employee_name = ?")
		args = append(args, *f.Employee)
	}
	if f.Client != nil && *f.Client != "" {
		wheres = append(wheres, "client_name = ?")
		args = append(args, *f.Client)
	}
	if f.Kind != nil && *f.Kind != "" {
		wheres = append(wheres, "log_type = ?")
		args = append(args, *f.Kind)
	}
	if f.DateFrom != nil && *f.DateFrom != "" {
		wheres = append(wheres, "substr(timestamp, 1, 10) >= ?")
		args = append(args, *f.DateFrom)
	}
	if f.DateTo != nil && *f.DateTo != "" {
		wheres = append(wheres, "substr(timestamp, 1, 10) <= ?")
		args = append(args, *f.DateTo)
	}
	if len(wheres) > 0 {
		buf.WriteString(" WHERE " + strings.Join(wheres, " AND "))
	}

	buf.WriteString(" ORDER BY timestamp DESC, id DESC")

	rows, err := s.db.QueryContext(ctx, buf.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Log
	for rows.Next() {
		var r logRow
		if err := rows.Scan(&r.ID, &r.EmployeeName, &r.ClientName, &r.LogType, &r.Timestamp, &r.Date, &r.Time); err != nil {
			return nil, err
		}
		out = append(out, r.toModel())
	}
	return out, rows.Err()
}

func (s *Store) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendance_logs`).Scan(&n)
	return n, err
}

// CountByDate: 指定日（YYYY-MM-DD、表示タイムゾーン基準）の打刻数
func (s *Store) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM attendance_logs WHERE substr(timestamp, 1, 10) = ?`, date).Scan(&n)
	return n, err
}

// CountByKind: log_type の完全一致のみ数える。
// 残業申請は時間数込みのパラメータ付き文字列なので clock_in/clock_out のどちらにも載らない。
func (s *Store) CountByKind(ctx context.Context, kind string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM attendance_logs WHERE log_type = ?`, kind).Scan(&n)
	return n, err
}
