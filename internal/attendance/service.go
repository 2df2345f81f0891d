package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ===== Error model (masters と同型) =====
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
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
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

type Service struct {
	db    *sql.DB
	store *Store
	now   func() time.Time // テストで固定できるようにしておく
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, store: NewStore(db), now: time.Now}
}

// composeLabel: メモがあれば「取引先（メモ）」に合成する。合成結果をそのまま保存し、
// メモは独立した列としては保持しない。
func composeLabel(client, memo string) string {
	if memo == "" {
		return client
	}
	return client + "（" + memo + "）"
}

// POST /clock-in
func (s *Service) ClockIn(ctx context.Context, in PunchRequest) (PunchResponse, error) {
	return s.punch(ctx, in, KindClockIn, GreetingClockIn)
}

// POST /clock-out
func (s *Service) ClockOut(ctx context.Context, in PunchRequest) (PunchResponse, error) {
	return s.punch(ctx, in, KindClockOut, GreetingClockOut)
}

func (s *Service) punch(ctx context.Context, in PunchRequest, kind, greeting string) (PunchResponse, error) {
	// 必須チェックは3操作とも同一（旧実装は退勤のみ検査していたが揃えてある）
	if in.EmployeeName == "" || in.ClientName == "" {
		return PunchResponse{}, ErrInvalid("employee_name and client_name are required")
	}

	now := s.now().In(JST)
	l := Log{
		EmployeeName: in.EmployeeName,
		ClientName:   composeLabel(in.ClientName, in.Memo),
		LogType:      kind,
		Timestamp:    now.Format(time.RFC3339),
		Date:         now.Format(DisplayDateLayout),
		Time:         now.Format(DisplayTimeLayout),
	}
	if _, err := s.store.Insert(ctx, l); err != nil {
		return PunchResponse{}, err
	}

	return PunchResponse{
		Message:   greeting,
		Timestamp: l.Timestamp,
		Employee:  l.EmployeeName,
		Client:    l.ClientName,
	}, nil
}

// POST /overtime-request
// 時間数は数値らしい文字列としてそのまま種別へ埋め込む（上下限の検査はしない）。
func (s *Service) RequestOvertime(ctx context.Context, in OvertimeRequest) (OvertimeResponse, error) {
	if in.EmployeeName == "" || in.ClientName == "" {
		return OvertimeResponse{}, ErrInvalid("employee_name and client_name are required")
	}

	now := s.now().In(JST)
	l := Log{
		EmployeeName: in.EmployeeName,
		ClientName:   composeLabel(in.ClientName, in.Memo),
		LogType:      fmt.Sprintf("overtime_request (%sh)", in.OvertimeHours.String()),
		Timestamp:    now.Format(time.RFC3339),
		Date:         now.Format(DisplayDateLayout),
		Time:         now.Format(DisplayTimeLayout),
	}
	if _, err := s.store.Insert(ctx, l); err != nil {
		return OvertimeResponse{}, err
	}

	return OvertimeResponse{
		Message:  GreetingOvertime,
		Employee: l.EmployeeName,
		Client:   l.ClientName,
		Date:     l.Date,
		Time:     l.Time,
	}, nil
}

// GET /admin/logs
func (s *Service) ListLogs(ctx context.Context, f Filter) ([]LogResponse, error) {
	rows, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LogResponse, 0, len(rows))
	for i := 0; i < len(rows); i++ {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// GET /admin/stats
func (s *Service) Stats(ctx context.Context) (StatsResponse, error) {
	var (
		res StatsResponse
		err error
	)
	if res.TotalLogs, err = s.store.CountAll(ctx); err != nil {
		return StatsResponse{}, err
	}
	today := s.now().In(JST).Format(DateLayout)
	if res.TodayLogs, err = s.store.CountByDate(ctx, today); err != nil {
		return StatsResponse{}, err
	}
	if res.ClockInCount, err = s.store.CountByKind(ctx, KindClockIn); err != nil {
		return StatsResponse{}, err
	}
	if res.ClockOutCount, err = s.store.CountByKind(ctx, KindClockOut); err != nil {
		return StatsResponse{}, err
	}
	return res, nil
}

// GET /admin/export/csv
// エクスポートは常に全件。一覧のフィルタは適用されない。
func (s *Service) ExportCSV(ctx context.Context) (ExportFile, error) {
	logs, err := s.store.List(ctx, Filter{})
	if err != nil {
		return ExportFile{}, err
	}
	body, err := marshalCSV(logs)
	if err != nil {
		return ExportFile{}, err
	}
	now := s.now().In(JST)
	return ExportFile{
		Filename:    fmt.Sprintf("attendance_logs_%s.csv", now.Format(ExportDateLayout)),
		ContentType: "text/csv; charset=utf-8",
		Body:        body,
	}, nil
}

// GET /admin/export/json
func (s *Service) ExportJSON(ctx context.Context) (ExportFile, error) {
	logs, err := s.store.List(ctx, Filter{})
	if err != nil {
		return ExportFile{}, err
	}
	now := s.now().In(JST)
	body, err := marshalExportJSON(logs, now)
	if err != nil {
		return ExportFile{}, err
	}
	return ExportFile{
		Filename:    fmt.Sprintf("attendance_logs_%s.json", now.Format(ExportDateLayout)),
		ContentType: "application/json; charset=utf-8",
		Body:        body,
	}, nil
}
