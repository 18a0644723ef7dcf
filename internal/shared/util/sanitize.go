package util

import (
	"fmt"
	"strings"
	"unicode"
)

const unknownName = "unknown"

// SanitizeFileName collapses whitespace to underscores and drops characters
// that would break a path or a Content-Disposition header.
func SanitizeFileName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		case r == '/' || r == '\\' || r == '"' || r == ';' || unicode.IsControl(r):
			continue
		}
		b.WriteRune(r)
		lastUnderscore = false
	}
	return strings.Trim(b.String(), ".")
}

// DownloadName builds "<name>_<kind>_<id>.docx", falling back to "unknown"
// when no usable name is stored.
func DownloadName(userName *string, kind string, id int64) string {
	name := ""
	if userName != nil {
		name = SanitizeFileName(*userName)
	}
	if name == "" {
		name = unknownName
	}
	return fmt.Sprintf("%s_%s_%d.docx", name, kind, id)
}
