package boundary

// ErrorKind tags every failure the pipeline can produce, so the wire-level
// error taxonomy is closed over an enum instead of ad hoc strings.
type ErrorKind uint8

const (
	// ErrNone marks a successful call.
	ErrNone ErrorKind = iota

	// ErrNoValidPieces: the queue decoded to zero entries.
	ErrNoValidPieces

	// ErrInsufficientPieces: fewer than two valid entries, so hold and
	// current cannot both be populated.
	ErrInsufficientPieces

	// ErrModelUnavailable: the solver's scoring model failed to load.
	ErrModelUnavailable

	// ErrSolverFailure: a typed failure from the solver, reported under
	// the solver's own identifier.
	ErrSolverFailure

	// ErrBufferOverflow: serialization would exceed the output capacity.
	ErrBufferOverflow

	// ErrCallInProgress: a reentrant call was attempted while another was
	// still running.
	ErrCallInProgress
)

// wireName returns the error identifier written to the wire.
// solverName carries the pass-through identifier for ErrSolverFailure.
func (k ErrorKind) wireName(solverName string) string {
	switch k {
	case ErrNoValidPieces:
		return "NoValidPieces"
	case ErrInsufficientPieces:
		return "InsufficientPieces"
	case ErrModelUnavailable:
		return "ModelUnavailable"
	case ErrSolverFailure:
		return solverName
	case ErrBufferOverflow:
		return "Buffer overflow"
	case ErrCallInProgress:
		return "CallInProgress"
	}
	return "UnknownError"
}

// Result is the outcome of one pipeline run: either a placement sequence
// (Err == ErrNone) or a tagged failure.
type Result struct {
	Kind ErrorKind

	// SolverName is the pass-through identifier when Kind == ErrSolverFailure.
	SolverName string
}

// OK reports whether the run succeeded.
func (r Result) OK() bool {
	return r.Kind == ErrNone
}
