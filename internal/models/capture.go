// Package models contains domain types for the phishing campaign report.
package models

// Status is the outcome label written to the report's Status column.
type Status string

const (
	StatusCorrectPassword   Status = "Correct password"
	StatusIncorrectPassword Status = "Incorrect password (Used for Google Workspace)"
	StatusOpenLink          Status = "Open link"
	StatusNoAttempt         Status = "No attempt logged"
)

// Statuses lists every status in report order.
var Statuses = []Status{
	StatusCorrectPassword,
	StatusIncorrectPassword,
	StatusOpenLink,
	StatusNoAttempt,
}

// DetermineStatus labels a capture by which credentials were submitted.
// An empty username with a password is what federated (Google Workspace)
// sign-in flows produce, since the username is posted to a different host.
func DetermineStatus(email, password string) Status {
	switch {
	case password == "":
		return StatusOpenLink
	case email == "":
		return StatusIncorrectPassword
	default:
		return StatusCorrectPassword
	}
}

// CaptureEvent is one credential-capture record from the proxy log.
type CaptureEvent struct {
	URL        string `json:"url"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RemoteAddr string `json:"remoteAddr"`
	UserAgent  string `json:"userAgent"`
	Status     Status `json:"status"`
}

// NewCaptureEvent builds an event and derives its status.
func NewCaptureEvent(url, email, password, remoteAddr, userAgent string) CaptureEvent {
	return CaptureEvent{
		URL:        url,
		Email:      email,
		Password:   password,
		RemoteAddr: remoteAddr,
		UserAgent:  userAgent,
		Status:     DetermineStatus(email, password),
	}
}

// Row converts the event into a report row.
func (e CaptureEvent) Row() ReportRow {
	return ReportRow{
		URL:        e.URL,
		Email:      e.Email,
		Password:   e.Password,
		RemoteAddr: e.RemoteAddr,
		UserAgent:  e.UserAgent,
		Status:     e.Status,
	}
}
