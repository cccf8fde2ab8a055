package loc

// Severity classifies a diagnostic. Parser/lexer/style problems are always
// Warning or Info; Error is reserved for conditions the caller asked us to
// treat as fatal (none currently do, per the core's "never throw" policy).
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Code identifies the kind of recoverable problem a component observed.
// Mirrors spec.md §7's error taxonomy: malformed input and
// unimplemented feature are Warning-severity, a missing resource is
// Info-severity; nothing here is fatal.
type Code int

const (
	WarnUnterminatedComment Code = iota + 1
	WarnUnterminatedEntity
	WarnUnclosedTag
	WarnMismatchedCloseTag
	WarnStrayCloseTag
	WarnMissingTagNameTerminator
	WarnUnexpectedBangSequence
	WarnUnknownCSSProperty
	WarnUnparseableCSSValue
	WarnUnterminatedCSSBlock
	WarnUnimplementedCSSFeature
	WarnUnparseableColor
	WarnURLParseError
	InfoMissingResource
)

// Diagnostic is a single recoverable problem observed while parsing,
// styling, or laying out a document, tagged with where it happened.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	At       Pos
}

func (d Diagnostic) String() string {
	return d.Severity.String() + " at " + d.At.String() + ": " + d.Message
}
