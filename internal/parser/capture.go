package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/phishreport/phishreport/internal/models"
)

// captureRecord holds the fields read from one Evilginx session line.
// Missing or null fields decode as empty strings.
type captureRecord struct {
	URL        string `json:"url"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	RemoteAddr string `json:"remote_addr"`
	UserAgent  string `json:"useragent"`
}

// CaptureStats describes how the lines of a capture log were handled.
type CaptureStats struct {
	Lines    int
	Skipped  int
	Accepted int
}

// ParseCaptureLog reads credential captures from an Evilginx log file.
func ParseCaptureLog(filePath string) ([]models.CaptureEvent, CaptureStats, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, CaptureStats{}, err
	}
	defer file.Close()

	return ParseCaptureLogFromReader(file, filePath)
}

// ParseCaptureLogFromReader reads captures from r. Lines that do not look
// like a JSON object are skipped; a line that looks like one but does not
// decode is a *models.ParseError.
func ParseCaptureLogFromReader(r io.Reader, name string) ([]models.CaptureEvent, CaptureStats, error) {
	events := make([]models.CaptureEvent, 0)
	var stats CaptureStats

	scanner := newLineScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if stats.Lines == 1 {
			line = stripBOM(line)
		}

		if !isObjectLine(line) {
			stats.Skipped++
			continue
		}

		var rec captureRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			perr := models.NewParseError(name, stats.Lines, "malformed capture record", err)
			perr.Content = truncate(line, 120)
			return nil, stats, perr
		}

		events = append(events, models.NewCaptureEvent(rec.URL, rec.Username, rec.Password, rec.RemoteAddr, rec.UserAgent))
		stats.Accepted++
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading capture log %s: %w", name, err)
	}

	return events, stats, nil
}

// isObjectLine reports whether line is shaped like a single JSON object.
func isObjectLine(line string) bool {
	return strings.HasPrefix(line, "{") && strings.HasSuffix(strings.TrimSpace(line), "}")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
