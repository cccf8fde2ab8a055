// Package diag collects recoverable diagnostics the way the rest of the
// pipeline expects: lexers, parsers, and the style resolver never return
// a Go error for malformed input, they push a loc.Diagnostic onto a
// shared Handler and keep going (spec.md §7: "parser/layout errors are
// recovered locally and logged").
package diag

import "github.com/quillweb/quill/internal/loc"

// Handler accumulates diagnostics for a single parse/style/layout pass.
// It is not safe for concurrent use; the core is single-threaded
// (spec.md §5) and each navigation gets its own Handler.
type Handler struct {
	diagnostics []loc.Diagnostic
}

// New returns an empty Handler.
func New() *Handler {
	return &Handler{}
}

func (h *Handler) push(sev loc.Severity, code loc.Code, at loc.Pos, msg string) {
	h.diagnostics = append(h.diagnostics, loc.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		At:       at,
	})
}

// Warn records a recoverable problem: malformed HTML/CSS/URL, an unknown
// CSS declaration, a mismatched close tag, and so on.
func (h *Handler) Warn(code loc.Code, at loc.Pos, msg string) {
	h.push(loc.Warning, code, at, msg)
}

// Info records a non-problem note, e.g. a missing resource that was
// substituted with a fallback.
func (h *Handler) Info(code loc.Code, at loc.Pos, msg string) {
	h.push(loc.Info, code, at, msg)
}

// Diagnostics returns every diagnostic recorded so far, in the order
// they were pushed.
func (h *Handler) Diagnostics() []loc.Diagnostic {
	return h.diagnostics
}

// HasWarnings reports whether any Warning-or-higher diagnostic was
// recorded.
func (h *Handler) HasWarnings() bool {
	for _, d := range h.diagnostics {
		if d.Severity >= loc.Warning {
			return true
		}
	}
	return false
}
