package deps

import (
	"regexp"
	"strings"
)

// Declaration is one crate requested by the dependencies file.
// Version is the requested version requirement; an empty Version means
// "any version" and is written to the manifest as the "*" wildcard.
type Declaration struct {
	Name    string
	Version string
}

// The recognized line forms, tried in priority order. Crate names are
// one or more characters from [A-Za-z0-9_-].
var (
	// serde = "1.0"
	equalsForm = regexp.MustCompile(`^([\w-]+)\s*=\s*"(.*)"$`)
	// serde:1.0 (version is the rest of the line, trimmed)
	colonForm = regexp.MustCompile(`^([\w-]+)\s*:\s*(.*)$`)
	// serde
	bareForm = regexp.MustCompile(`^([\w-]+)$`)
)

// ParseLine converts one raw line of the dependencies file into a Declaration.
// It accepts:
//
//	serde
//	serde:1.0
//	serde = "1.0"
//	serde="1.0"
//
// Blank lines and lines whose first non-space character is '#' yield no
// declaration (ok == false). Lines matching none of the strict forms fall
// back to whitespace splitting: the first token is the name, the second (if
// any) is the version with one surrounding layer of quotes stripped. This
// leniency is deliberate: a malformed declaration is skipped, never an error.
func ParseLine(line string) (Declaration, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Declaration{}, false
	}

	if m := equalsForm.FindStringSubmatch(line); m != nil {
		return Declaration{Name: m[1], Version: m[2]}, true
	}
	if m := colonForm.FindStringSubmatch(line); m != nil {
		return Declaration{Name: m[1], Version: strings.TrimSpace(m[2])}, true
	}
	if m := bareForm.FindStringSubmatch(line); m != nil {
		return Declaration{Name: m[1]}, true
	}

	// Fallback: tolerate input that matches none of the stricter forms.
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Declaration{}, false
	}
	d := Declaration{Name: fields[0]}
	if len(fields) > 1 {
		d.Version = StripQuotes(fields[1])
	}
	return d, true
}

// StripQuotes trims surrounding whitespace and removes a single layer of
// surrounding double quotes, then a single layer of surrounding single
// quotes. Interior quote characters are left alone.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []byte{'"', '\''} {
		if len(s) >= 2 && s[0] == q && s[len(s)-1] == q {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
