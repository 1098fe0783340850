package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/phishreport/phishreport/internal/models"
)

const (
	identityEmailField = "email"
	identityNameField  = "name"
)

// ParseIdentities reads an identity supplement. The format follows the file
// extension; files of an unsupported type yield an empty supplement.
func ParseIdentities(filePath string) (*models.Identities, error) {
	format := IdentityFormatFor(filePath)
	if format == FormatUnsupported {
		return models.NewIdentities(), nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseIdentities(file, filePath, format, delimiterFor(filePath))
}

// ParseIdentitiesFromReader reads a supplement of the given format from r.
// Tabular input is comma-separated.
func ParseIdentitiesFromReader(r io.Reader, name string, format IdentityFormat) (*models.Identities, error) {
	return parseIdentities(r, name, format, ',')
}

func parseIdentities(r io.Reader, name string, format IdentityFormat, delim rune) (*models.Identities, error) {
	switch format {
	case FormatJSON:
		return parseIdentityJSON(r, name)
	case FormatTabular:
		return parseIdentityTabular(r, name, delim)
	default:
		return models.NewIdentities(), nil
	}
}

// parseIdentityJSON reads an array of {"email": ..., "name": ...} objects.
func parseIdentityJSON(r io.Reader, name string) (*models.Identities, error) {
	data, err := io.ReadAll(bomReader(r))
	if err != nil {
		return nil, fmt.Errorf("reading identities %s: %w", name, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, models.NewParseError(name, 0, "identity supplement must be a JSON array", nil)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, models.NewParseError(name, 0, "malformed identity supplement", err)
	}

	identities := models.NewIdentities()
	for i, rec := range records {
		email, ok := rec[identityEmailField]
		if !ok {
			return nil, missingFieldError(name, i+1, identityEmailField)
		}
		displayName, ok := rec[identityNameField]
		if !ok {
			return nil, missingFieldError(name, i+1, identityNameField)
		}
		identities.Set(stringValue(email), stringValue(displayName))
	}

	return identities, nil
}

func missingFieldError(name string, record int, field string) *models.ParseError {
	return models.NewParseError(name, record, fmt.Sprintf("identity record missing %q field", field), nil)
}

// stringValue renders a decoded JSON scalar as text; null becomes "".
func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
