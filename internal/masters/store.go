// store.go
package masters

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// GET /employees
func (s *Store) ListEmployees(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM employees ORDER BY name`
	return s.listNames(ctx, q)
}

// GET /clients
func (s *Store) ListClients(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM clients ORDER BY name`
	return s.listNames(ctx, q)
}

func (s *Store) listNames(ctx context.Context, q string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		res = append(res, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
