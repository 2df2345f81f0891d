package attendance

// DB行に対応（スキャン用）
type logRow struct {
	ID           int64
	EmployeeName string
	ClientName   string // メモ付きの場合は「取引先（メモ）」の合成済み文字列
	LogType      string
	Timestamp    string // ISO-8601（+09:00）
	Date         string // YYYY年MM月DD日
	Time         string // HH:MM
}

// Service ↔ Store で使うモデル（created_at は読み出し経路に載せない）
type Log struct {
	ID           int64
	EmployeeName string
	ClientName   string
	LogType      string
	Timestamp    string
	Date         string
	Time         string
}

func (r logRow) toModel() Log {
	return Log(r)
}

func (l Log) toDTO() LogResponse {
	return LogResponse{
		ID:        l.ID,
		Employee:  l.EmployeeName,
		Client:    l.ClientName,
		Type:      l.LogType,
		Timestamp: l.Timestamp,
		Date:      l.Date,
		Time:      l.Time,
	}
}

func (l Log) toExport() exportRecord {
	return exportRecord{
		ID:           l.ID,
		EmployeeName: l.EmployeeName,
		ClientName:   l.ClientName,
		LogType:      l.LogType,
		Timestamp:    l.Timestamp,
		Date:         l.Date,
		Time:         l.Time,
	}
}
