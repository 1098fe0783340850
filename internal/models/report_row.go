package models

// ReportRow is a single line of the output sheet.
type ReportRow struct {
	URL        string `json:"url"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RemoteAddr string `json:"remoteAddr"`
	UserAgent  string `json:"userAgent"`
	Status     Status `json:"status"`
}

// NoAttemptRow is the placeholder for a target that never interacted.
func NoAttemptRow(email string) ReportRow {
	return ReportRow{
		Email:  email,
		Status: StatusNoAttempt,
	}
}
