package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	conn := newTestDB(t)
	svc := NewService(conn)
	svc.now = func() time.Time {
		return time.Date(2025, 4, 1, 9, 30, 0, 0, JST)
	}
	return svc, conn
}

func TestClockInInsertsExactlyOneRow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.ClockIn(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事"})
	require.NoError(t, err)

	assert.Equal(t, GreetingClockIn, res.Message)
	assert.Equal(t, "田中太郎", res.Employee)
	assert.Equal(t, "A商事", res.Client)
	assert.Equal(t, "2025-04-01T09:30:00+09:00", res.Timestamp)

	logs, err := svc.store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, KindClockIn, logs[0].LogType)
	assert.Equal(t, "2025年04月01日", logs[0].Date)
	assert.Equal(t, "09:30", logs[0].Time)
}

func TestMemoComposition(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.ClockIn(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事", Memo: "会議"})
	require.NoError(t, err)
	assert.Equal(t, "A商事（会議）", res.Client)

	res, err = svc.ClockOut(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事"})
	require.NoError(t, err)
	assert.Equal(t, "A商事", res.Client)
}

func TestPunchRequiredFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		run  func() error
	}{
		{"出勤で従業員名なし", func() error {
			_, err := svc.ClockIn(ctx, PunchRequest{ClientName: "A商事"})
			return err
		}},
		{"退勤で従業員名なし", func() error {
			_, err := svc.ClockOut(ctx, PunchRequest{ClientName: "A商事"})
			return err
		}},
		{"退勤で取引先なし", func() error {
			_, err := svc.ClockOut(ctx, PunchRequest{EmployeeName: "田中太郎"})
			return err
		}},
		{"残業申請で取引先なし", func() error {
			_, err := svc.RequestOvertime(ctx, OvertimeRequest{EmployeeName: "田中太郎", OvertimeHours: "2"})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			var api *APIError
			require.ErrorAs(t, err, &api)
			assert.Equal(t, CodeInvalidArgument, api.Code)
		})
	}

	// 1行も入っていないこと
	n, err := svc.store.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOvertimeKindEmbedsHours(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RequestOvertime(ctx, OvertimeRequest{
		EmployeeName:  "鈴木一郎",
		ClientName:    "本社",
		OvertimeHours: "2.5",
		Memo:          "締め対応",
	})
	require.NoError(t, err)

	logs, err := svc.store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "overtime_request (2.5h)", logs[0].LogType)
	assert.Equal(t, "本社（締め対応）", logs[0].ClientName)
}

func TestStatsCountsExactKindsOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事"})
	require.NoError(t, err)
	_, err = svc.ClockIn(ctx, PunchRequest{EmployeeName: "佐藤花子", ClientName: "B株式会社"})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事"})
	require.NoError(t, err)
	_, err = svc.RequestOvertime(ctx, OvertimeRequest{EmployeeName: "田中太郎", ClientName: "A商事", OvertimeHours: "1"})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalLogs)
	assert.Equal(t, int64(4), stats.TodayLogs)
	// 残業申請はどちらのカウンタにも入らない
	assert.Equal(t, int64(2), stats.ClockInCount)
	assert.Equal(t, int64(1), stats.ClockOutCount)
}

func TestExportCSV(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("空テーブルでもBOMとヘッダ行は出る", func(t *testing.T) {
		f, err := svc.ExportCSV(ctx)
		require.NoError(t, err)
		assert.Equal(t, "attendance_logs_20250401.csv", f.Filename)
		require.True(t, bytes.HasPrefix(f.Body, utf8BOM))

		lines := strings.Split(strings.TrimRight(string(bytes.TrimPrefix(f.Body, utf8BOM)), "\n"), "\n")
		require.Len(t, lines, 1)
		assert.Equal(t, "ID,従業員名,取引先,種別,タイムスタンプ,日付,時刻", lines[0])
	})

	_, err := svc.ClockIn(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事"})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事"})
	require.NoError(t, err)
	_, err = svc.RequestOvertime(ctx, OvertimeRequest{EmployeeName: "鈴木一郎", ClientName: "本社", OvertimeHours: "2"})
	require.NoError(t, err)

	f, err := svc.ExportCSV(ctx)
	require.NoError(t, err)

	body := string(bytes.TrimPrefix(f.Body, utf8BOM))
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 4) // ヘッダ + 3行

	assert.Contains(t, body, "出勤")
	assert.Contains(t, body, "退勤")
	// 残業申請は和訳されず種別文字列のまま
	assert.Contains(t, body, "overtime_request (2h)")
}

func TestExportJSONRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, PunchRequest{EmployeeName: "田中太郎", ClientName: "A商事", Memo: "会議"})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, PunchRequest{EmployeeName: "佐藤花子", ClientName: "B株式会社"})
	require.NoError(t, err)

	f, err := svc.ExportJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, "attendance_logs_20250401.json", f.Filename)

	var env struct {
		ExportDate   string `json:"export_date"`
		TotalRecords int    `json:"total_records"`
		Data         []struct {
			ID           int64  `json:"id"`
			EmployeeName string `json:"employee_name"`
			ClientName   string `json:"client_name"`
			LogType      string `json:"log_type"`
			Timestamp    string `json:"timestamp"`
			Date         string `json:"date"`
			Time         string `json:"time"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(f.Body, &env))

	assert.Equal(t, "2025-04-01T09:30:00+09:00", env.ExportDate)
	require.Equal(t, 2, env.TotalRecords)
	require.Len(t, env.Data, 2)

	// フィルタなし一覧と1件ずつ一致する（射影名の違いのみ）
	listed, err := svc.ListLogs(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, listed, len(env.Data))
	for i := range listed {
		assert.Equal(t, listed[i].ID, env.Data[i].ID)
		assert.Equal(t, listed[i].Employee, env.Data[i].EmployeeName)
		assert.Equal(t, listed[i].Client, env.Data[i].ClientName)
		assert.Equal(t, listed[i].Type, env.Data[i].LogType)
		assert.Equal(t, listed[i].Timestamp, env.Data[i].Timestamp)
		assert.Equal(t, listed[i].Date, env.Data[i].Date)
		assert.Equal(t, listed[i].Time, env.Data[i].Time)
	}

	// 日本語がエスケープされていないこと
	assert.Contains(t, string(f.Body), "A商事（会議）")
}
