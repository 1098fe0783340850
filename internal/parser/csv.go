package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/phishreport/phishreport/internal/models"
)

// parseIdentityTabular reads delimited text whose header row names an
// "email" and a "name" column. Short rows read missing cells as "".
func parseIdentityTabular(r io.Reader, name string, delim rune) (*models.Identities, error) {
	reader := csv.NewReader(bomReader(r))
	reader.Comma = delim
	reader.FieldsPerRecord = -1

	identities := models.NewIdentities()

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return identities, nil
	}
	if err != nil {
		return nil, csvParseError(name, err)
	}

	emailCol, nameCol := -1, -1
	for i, col := range header {
		switch col {
		case identityEmailField:
			emailCol = i
		case identityNameField:
			nameCol = i
		}
	}
	if emailCol < 0 {
		return nil, models.NewParseError(name, 1, fmt.Sprintf("header missing %q column", identityEmailField), nil)
	}
	if nameCol < 0 {
		return nil, models.NewParseError(name, 1, fmt.Sprintf("header missing %q column", identityNameField), nil)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvParseError(name, err)
		}
		identities.Set(cell(row, emailCol), cell(row, nameCol))
	}

	return identities, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func csvParseError(name string, err error) *models.ParseError {
	line := 0
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		line = perr.Line
	}
	return models.NewParseError(name, line, "malformed tabular identity supplement", err)
}
