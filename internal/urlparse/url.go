// Package urlparse implements a state-machine URL parser and resolver
// modeled on the WHATWG URL Standard, used by navigation, resource
// loading, and hyperlink resolution (spec.md §4.1).
package urlparse

import (
	"strconv"
	"strings"
)

// specialSchemes forces authority parsing (scheme://host/...).
var specialSchemes = map[string]int{
	"ftp":   21,
	"file":  -1, // no default port
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// URL is an immutable, already-resolved URL value. Every field is set by
// the state machine in FromBaseURL; there is no mutation API, matching
// spec.md's "immutable values" lifecycle note.
type URL struct {
	Scheme     string
	Username   string
	Password   string
	Host       string
	Port       *int
	Path       []string // ordered path segments, never includes the leading "/"
	Query      *string
	Fragment   *string
	OpaquePath string // set instead of Path when the URL has no authority (e.g. "about:blank", "mailto:a@b.com")
	IsOpaque   bool
}

// IsSpecial reports whether URL.Scheme is one of the WHATWG "special"
// schemes, which forces authority (host) parsing.
func (u *URL) IsSpecial() bool {
	_, ok := specialSchemes[u.Scheme]
	return ok
}

// FileExtension returns the lowercased suffix after the last "." in the
// last path segment, or "" if there is none.
func (u *URL) FileExtension() string {
	if len(u.Path) == 0 {
		return ""
	}
	last := u.Path[len(u.Path)-1]
	idx := strings.LastIndexByte(last, '.')
	if idx < 0 || idx == len(last)-1 {
		return ""
	}
	return strings.ToLower(last[idx+1:])
}

// String reserializes the URL. For the conforming subset described in
// spec.md §8 property 1, parse(String()) round-trips to an equal URL.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteByte(':')

	if u.IsOpaque {
		b.WriteString(u.OpaquePath)
	} else {
		b.WriteString("//")
		if u.Username != "" || u.Password != "" {
			b.WriteString(u.Username)
			if u.Password != "" {
				b.WriteByte(':')
				b.WriteString(u.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.Host)
		if u.Port != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(*u.Port))
		}
		b.WriteByte('/')
		b.WriteString(strings.Join(u.Path, "/"))
	}
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}

// Equal compares two URLs field by field, used by round-trip tests.
func (u *URL) Equal(o *URL) bool {
	if u == nil || o == nil {
		return u == o
	}
	if u.Scheme != o.Scheme || u.Username != o.Username || u.Password != o.Password ||
		u.Host != o.Host || u.IsOpaque != o.IsOpaque || u.OpaquePath != o.OpaquePath {
		return false
	}
	if (u.Port == nil) != (o.Port == nil) || (u.Port != nil && *u.Port != *o.Port) {
		return false
	}
	if (u.Query == nil) != (o.Query == nil) || (u.Query != nil && *u.Query != *o.Query) {
		return false
	}
	if (u.Fragment == nil) != (o.Fragment == nil) || (u.Fragment != nil && *u.Fragment != *o.Fragment) {
		return false
	}
	if len(u.Path) != len(o.Path) {
		return false
	}
	for i := range u.Path {
		if u.Path[i] != o.Path[i] {
			return false
		}
	}
	return true
}

// From parses s with no base URL.
func From(s string) (*URL, bool) {
	return FromBaseURL(s, nil)
}
