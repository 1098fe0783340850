package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phishreport/phishreport/internal/models"
)

const emailMarker = `email="`

// ParseTargets reads a lure roster: one generated URL per line followed by
// space-separated attributes, one of which is email="<address>".
func ParseTargets(filePath string) (*models.Targets, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseTargetsFromReader(file, filePath)
}

// ParseTargetsFromReader reads a roster from r. Lines without an email
// attribute are ignored.
func ParseTargetsFromReader(r io.Reader, name string) (*models.Targets, error) {
	targets := models.NewTargets()

	scanner := newLineScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = stripBOM(line)
			first = false
		}

		if url, email, ok := parseTargetLine(line); ok {
			targets.Set(url, email)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading targets %s: %w", name, err)
	}

	return targets, nil
}

// parseTargetLine extracts the URL and recipient from a roster line.
// When several email attributes are present the last one wins.
func parseTargetLine(line string) (url, email string, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.Contains(line, emailMarker) {
		return "", "", false
	}

	parts := strings.Split(line, " ")
	url = parts[0]
	for _, part := range parts {
		if !strings.HasPrefix(part, emailMarker) {
			continue
		}
		value := part[len(emailMarker):]
		if end := strings.IndexByte(value, '"'); end >= 0 {
			value = value[:end]
		}
		email = value
	}

	if email == "" {
		return "", "", false
	}
	return url, email, true
}
