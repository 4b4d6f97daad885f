package orchestrator

import "errors"

// Error kinds surfaced by pipeline operations. Failures are wrapped so the
// kind stays detectable with errors.Is through the whole chain.
var (
	// ErrRead marks a missing or unreadable source artifact (template or
	// value form).
	ErrRead = errors.New("read failure")

	// ErrWrite marks an output artifact that could not be created or
	// finalised. A failed write leaves no guarantee about artifact
	// completeness.
	ErrWrite = errors.New("write failure")

	// ErrValidation marks an operation invoked without its required prior
	// state, such as building a report before any template was scanned.
	ErrValidation = errors.New("validation failure")
)

// kindError pairs a failure with its kind so both stay visible to errors.Is.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

func readError(err error) error {
	return &kindError{kind: ErrRead, err: err}
}

func writeError(err error) error {
	return &kindError{kind: ErrWrite, err: err}
}

func validationError(msg string) error {
	return &kindError{kind: ErrValidation, err: errors.New(msg)}
}
