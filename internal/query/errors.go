package query

// ValidationError rejects bad query arguments at the engine boundary.
// Query misses (unmatched continent, a record without a translation) are
// not errors; they produce empty or partial results.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
