package urlparse

import "github.com/dlclark/regexp2"

// ipv4Pattern recognizes the WHATWG "IPv4 number" host shape: four
// dotted decimal octets, each 1-3 digits (spec.md §4.1 does not
// require full IPv4 parsing/canonicalization -- only Host's state
// transitions matter for spec.md's round-trip property -- so this is
// classification, not the authority on control flow; Host/Port
// parsing itself stays in the hand-rolled state machine in state.go).
// The pattern is compiled with regexp2; its trailing (?!\d) lookahead
// is redundant with the "$" anchor, which already rejects a longer
// numeric run on the last octet (e.g. "1.1.1.1000").
var ipv4Pattern = regexp2.MustCompile(`^(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)(?!\d)$`, regexp2.None)

// IsIPv4Host reports whether host has the dotted-quad shape of an IPv4
// address, used by callers that want to distinguish a literal IP host
// from a domain name (e.g. a navigation UI deciding whether to attempt
// a DNS lookup -- out of scope for the core itself, but a property of
// URL worth exposing since the core is the only place the host string
// is parsed).
func IsIPv4Host(host string) bool {
	ok, err := ipv4Pattern.MatchString(host)
	return err == nil && ok
}

// IsIPv4 reports whether u's Host looks like an IPv4 literal.
func (u *URL) IsIPv4() bool {
	return IsIPv4Host(u.Host)
}
