package diag

import "fmt"

// Fatalf panics with a diagnostic describing an internal invariant
// violation: programmer error in the core (e.g. asking a NoContent
// layout node for its position, or treating a non-table node as a
// Table formatting context). spec.md §7 classifies these as fatal,
// unlike every other error class this package handles.
func Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf("quill: internal invariant violation: "+format, args...))
}
