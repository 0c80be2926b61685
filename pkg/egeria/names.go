package egeria

import (
	"strings"
	"unicode"
)

// QualifiedName builds a qualified name of the form
// {localQualifier::}{typeName}::{displayName}{::version}. Whitespace is removed from
// the display name and empty parts are left out.
func (c *Client) QualifiedName(typeName, displayName, version string) string {
	return QualifiedName(c.cfg.LocalQualifier, typeName, displayName, version)
}

// QualifiedName is the configuration-free form of Client.QualifiedName
func QualifiedName(localQualifier, typeName, displayName, version string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, displayName)

	parts := make([]string, 0, 4)
	for _, p := range []string{localQualifier, typeName, name, version} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "::")
}
