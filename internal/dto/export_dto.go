package dto

type EmailExportRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject"`
}

type MonitoringStatsResponse struct {
	TotalSessions   int            `json:"total_sessions"`
	TotalMessages   int64          `json:"total_messages"`
	TotalOperations int64          `json:"total_operations"`
	Sessions        []SessionStats `json:"sessions"`
}

type SessionStats struct {
	SessionID    string           `json:"session_id"`
	Operations   map[string]int64 `json:"operations"`
	LastActivity string           `json:"last_activity,omitempty"`
}
