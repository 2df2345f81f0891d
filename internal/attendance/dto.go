package attendance

import (
	"encoding/json"
	"time"
)

const (
	KindClockIn  = "clock_in"
	KindClockOut = "clock_out"

	// 打刻時刻は固定UTC+9で確定し、3表現（ISO・日付・時刻）を同じnowから導出する
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "2006年01月02日"
	DisplayTimeLayout = "15:04"
	ExportDateLayout  = "20060102"

	GreetingClockIn  = "おはようございます。"
	GreetingClockOut = "お疲れさまでした。"
	GreetingOvertime = "残業申請を受け付けました。"
)

// JST: 打刻・集計・エクスポートすべての基準タイムゾーン
var JST = time.FixedZone("JST", 9*60*60)

type PunchRequest struct {
	EmployeeName string `json:"employee_name"`
	ClientName   string `json:"client_name"`
	Memo         string `json:"memo,omitempty"`
}

// OvertimeHours は数値でも数値風の文字列でも受け取り、送られた表記のまま保持する。
// 上下限の検査はせず、種別文字列へそのまま埋め込まれる。
type OvertimeHours string

func (h *OvertimeHours) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*h = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*h = OvertimeHours(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*h = OvertimeHours(n.String())
	return nil
}

func (h OvertimeHours) String() string { return string(h) }

type OvertimeRequest struct {
	EmployeeName  string        `json:"employee_name"`
	ClientName    string        `json:"client_name"`
	OvertimeHours OvertimeHours `json:"overtime_hours"`
	Memo          string        `json:"memo,omitempty"`
}

type PunchResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Employee  string `json:"employee"`
	Client    string `json:"client"`
}

type OvertimeResponse struct {
	Message  string `json:"message"`
	Employee string `json:"employee"`
	Client   string `json:"client"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Filter: 全項目が独立に省略可能。指定された項目だけで絞り込む。
type Filter struct {
	Employee *string
	Client   *string
	Kind     *string
	DateFrom *string // YYYY-MM-DD（両端含む）
	DateTo   *string
}

type LogResponse struct {
	ID        int64  `json:"id"`
	Employee  string `json:"employee"`
	Client    string `json:"client"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

type StatsResponse struct {
	TotalLogs     int64 `json:"total_logs"`
	TodayLogs     int64 `json:"today_logs"`
	ClockInCount  int64 `json:"clock_in_count"`
	ClockOutCount int64 `json:"clock_out_count"`
}

// ExportFile: ダウンロードさせる完成済みペイロード
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type exportRecord struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	ClientName   string `json:"client_name"`
	LogType      string `json:"log_type"`
	Timestamp    string `json:"timestamp"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

type exportEnvelope struct {
	ExportDate   string         `json:"export_date"`
	TotalRecords int            `json:"total_records"`
	Data         []exportRecord `json:"data"`
}
