package attendance

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var csvHeader = []string{"ID", "従業員名", "取引先", "種別", "タイムスタンプ", "日付", "時刻"}

// kindLabel: 出勤/退勤の2種別だけ和訳する。残業申請など未知の種別は
// そのまま書き出す（旧実装はすべて「退勤」に落ちていた）。
func kindLabel(kind string) string {
	switch kind {
	case KindClockIn:
		return "出勤"
	case KindClockOut:
		return "退勤"
	default:
		return kind
	}
}

// marshalCSV: Excelが文字コードを誤認しないようBOM付きUTF-8で書き出す
func marshalCSV(logs []Log) ([]byte, error) {
	var b bytes.Buffer
	tw := transform.NewWriter(&b, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(tw)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, l := range logs {
		record := []string{
			strconv.FormatInt(l.ID, 10),
			l.EmployeeName,
			l.ClientName,
			kindLabel(l.LogType),
			l.Timestamp,
			l.Date,
			l.Time,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func marshalExportJSON(logs []Log, exportedAt time.Time) ([]byte, error) {
	data := make([]exportRecord, 0, len(logs))
	for _, l := range logs {
		data = append(data, l.toExport())
	}
	env := exportEnvelope{
		ExportDate:   exportedAt.Format(time.RFC3339),
		TotalRecords: len(data),
		Data:         data,
	}

	var b bytes.Buffer
	e := json.NewEncoder(&b)
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	if err := e.Encode(env); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
