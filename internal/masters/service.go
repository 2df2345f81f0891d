package masters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ===== Error model (attendance と同型) =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====
//
// マスタはAPI経由では読み取り専用。行の追加は起動時のシード投入だけで、
// 更新・削除の経路は存在しない。

type Service struct {
	db    *sql.DB
	store *Store
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, store: NewStore(db)}
}

func (s *Service) ListEmployees(ctx context.Context) ([]string, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) ListClients(ctx context.Context) ([]string, error) {
	return s.store.ListClients(ctx)
}
