package output

import (
	"fmt"
	"strings"
)

// Format names an output shape
type Format string

// Output formats
const (
	JSON    Format = "JSON"
	DICT    Format = "DICT"
	LIST    Format = "LIST"
	MD      Format = "MD"
	FORM    Format = "FORM"
	REPORT  Format = "REPORT"
	MERMAID Format = "MERMAID"
	// ALL matches any format in a FormatSpec's Types
	ALL Format = "ALL"
)

var knownFormats = []Format{JSON, DICT, LIST, MD, FORM, REPORT, MERMAID, ALL}

// ParseFormat parses a format name case-insensitively. "TABLE" is accepted as LIST.
func ParseFormat(s string) (Format, error) {
	up := Format(strings.ToUpper(strings.TrimSpace(s)))
	if up == "TABLE" {
		return LIST, nil
	}
	for _, f := range knownFormats {
		if f == up {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler, so formats decode from YAML and flags
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// String implements fmt.Stringer
func (f Format) String() string {
	return string(f)
}

// IsText reports whether the format renders to text rather than structured values
func (f Format) IsText() bool {
	switch f {
	case LIST, MD, FORM, REPORT, MERMAID:
		return true
	default:
		return false
	}
}
