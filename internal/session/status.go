package session

// StatusReporter holds the outcome of the last completed operation for
// display. Every report overwrites the previous one; there is no history.
type StatusReporter struct {
	message string
	isError bool
	set     bool
}

// Report records the outcome of an operation, replacing anything reported
// before.
func (r *StatusReporter) Report(ok bool, message string) {
	r.message = message
	r.isError = !ok
	r.set = true
}

// Current returns the last reported message and whether it was an error.
// ok is false when nothing has been reported yet.
func (r *StatusReporter) Current() (message string, isError bool, ok bool) {
	return r.message, r.isError, r.set
}
