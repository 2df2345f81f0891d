package db

import (
	"context"
	"database/sql"
	"fmt"
)

// 出退勤ログ・従業員マスタ・取引先マスタの3テーブル。
// ログとマスタの間に外部キーは張らない（マスタは選択肢の供給元でしかなく、
// ログ側は自由入力の名前をそのまま保持する）。
const schema = `
CREATE TABLE IF NOT EXISTS attendance_logs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_name TEXT NOT NULL,
	client_name   TEXT NOT NULL,
	log_type      TEXT NOT NULL,
	timestamp     TEXT NOT NULL,
	date          TEXT NOT NULL,
	time          TEXT NOT NULL,
	created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS employees (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS clients (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

func InitSchema(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}
	return nil
}

// Seed はマスタへ名前を冪等投入する。既存行は UNIQUE 制約で無視される。
func Seed(ctx context.Context, conn *sql.DB, employees, clients []string) error {
	return RunInTx(ctx, conn, nil, func(ctx context.Context, tx DBTX) error {
		for _, name := range employees {
			if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO employees (name) VALUES (?)`, name); err != nil {
				return err
			}
		}
		for _, name := range clients {
			if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO clients (name) VALUES (?)`, name); err != nil {
				return err
			}
		}
		return nil
	})
}
