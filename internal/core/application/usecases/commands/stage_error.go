package commands

import "fmt"

// Stage identifies which write of a lifecycle command chain failed.
type Stage string

const (
	// StageOrderWrite is the partial update of the order document.
	StageOrderWrite Stage = "order write"

	// StageHistoryAppend is the append to the order's status history.
	StageHistoryAppend Stage = "history append"

	// StageNotification is the creation of notification documents.
	StageNotification Stage = "notification dispatch"
)

// StageError reports a failure of one stage of a lifecycle command chain.
// Because the stages are independent writes, the stage tells the caller which
// effects already took place: everything before the failed stage is persisted
// and will not be rolled back.
type StageError struct {
	stage Stage
	cause error
}

// NewStageError wraps a stage failure with the stage it occurred in.
func NewStageError(stage Stage, cause error) *StageError {
	return &StageError{stage: stage, cause: cause}
}

// Stage returns the stage that failed.
func (e *StageError) Stage() Stage {
	return e.stage
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.stage, e.cause)
}

func (e *StageError) Unwrap() error {
	return e.cause
}
