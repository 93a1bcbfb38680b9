package logging

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const redacted = "[redacted]"

var keySegments = regexp.MustCompile(`[^a-z0-9]+`)

// Key segments whose values never reach the log.
var hiddenSegments = map[string]bool{
	"birth":    true,
	"address":  true,
	"address1": true,
	"address2": true,
	"photo":    true,
	"password": true,
	"secret":   true,
	"token":    true,
}

// Keys whose values are resident names, logged as initials.
var nameKeys = map[string]bool{
	"name":     true,
	"resident": true,
	"keywords": true,
}

// Resident returns the fields identifying a resident in a log record.
func Resident(id, displayName string) []any {
	return []any{"resident_id", id, "resident", displayName}
}

// Initials reduces a display name such as "Cruz, Ana R." to "C. A. R.".
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	out := make([]string, 0, len(words))
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		out = append(out, string(unicode.ToUpper(r))+".")
	}
	return strings.Join(out, " ")
}

// scrub returns a copy of kv with hidden values replaced and resident names
// reduced to initials.
func scrub(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}
	out := make([]any, len(kv))
	copy(out, kv)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		switch classify(key) {
		case keyHidden:
			out[i+1] = redacted
		case keyName:
			out[i+1] = Initials(fmt.Sprint(out[i+1]))
		}
	}
	return out
}

type keyKind int

const (
	keyPlain keyKind = iota
	keyHidden
	keyName
)

func classify(key string) keyKind {
	lower := strings.ToLower(key)
	segments := keySegments.Split(lower, -1)
	for _, s := range segments {
		if hiddenSegments[s] {
			return keyHidden
		}
	}
	if nameKeys[lower] || strings.HasSuffix(lower, "_name") {
		return keyName
	}
	return keyPlain
}
