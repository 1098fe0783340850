package parser

import (
	"path/filepath"
	"strings"
)

// IdentityFormat is the encoding of an identity supplement file.
type IdentityFormat int

const (
	FormatUnsupported IdentityFormat = iota
	FormatJSON
	FormatTabular
)

func (f IdentityFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTabular:
		return "tabular"
	default:
		return "unsupported"
	}
}

// tabularDelimiters maps tabular extensions to their field separator.
var tabularDelimiters = map[string]rune{
	".csv": ',',
	".tsv": '\t',
}

// IdentityFormatFor picks the supplement format from the file extension.
func IdentityFormatFor(filePath string) IdentityFormat {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".json" {
		return FormatJSON
	}
	if _, ok := tabularDelimiters[ext]; ok {
		return FormatTabular
	}
	return FormatUnsupported
}

// delimiterFor returns the field separator for a tabular file, defaulting
// to a comma.
func delimiterFor(filePath string) rune {
	if d, ok := tabularDelimiters[strings.ToLower(filepath.Ext(filePath))]; ok {
		return d
	}
	return ','
}
