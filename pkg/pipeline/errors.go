package pipeline

import "fmt"

// Stage identifies the pipeline phase an error came from
type Stage int

// pipeline stages in execution order
const (
	StageGeneration Stage = iota
	StageTranslation
	StageSynthesis
)

// String returns the stage name
func (s Stage) String() string {
	switch s {
	case StageGeneration:
		return "generation"
	case StageTranslation:
		return "translation"
	case StageSynthesis:
		return "synthesis"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageError tags a backend failure with the pipeline phase that produced
// it, so the caller can report the failed stage without leaking backend
// internals.
type StageError struct {
	Stage Stage
	Err   error
}

// Error returns the stage-prefixed message
func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying backend error
func (e *StageError) Unwrap() error {
	return e.Err
}
