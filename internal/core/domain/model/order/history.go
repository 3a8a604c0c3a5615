package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Document field names of a status history entry.
const (
	HistoryFieldStatus    = "status"
	HistoryFieldTimestamp = "timestamp"
	HistoryFieldNotes     = "notes"
)

// StatusHistoryEntry is the immutable audit record of one status transition.
// Entries are appended under the owning order and never mutated or deleted;
// ordered by timestamp they reconstruct the order's full transition history.
type StatusHistoryEntry struct {
	status    Status
	timestamp kernel.Timestamp
	notes     string
}

// NewStatusHistoryEntry creates a history entry for a transition to status at
// the given instant. The timestamp must equal the updatedAt written to the
// order in the same logical operation. Empty notes default to the status's
// display label.
func NewStatusHistoryEntry(status Status, timestamp kernel.Timestamp, notes string) (StatusHistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}
	if timestamp.IsZero() {
		return StatusHistoryEntry{}, errs.NewValueIsRequiredError("timestamp")
	}

	if notes == "" {
		notes = status.DisplayLabel()
	}

	return StatusHistoryEntry{
		status:    status,
		timestamp: timestamp,
		notes:     notes,
	}, nil
}

// Status returns the status recorded by this entry.
func (e StatusHistoryEntry) Status() Status {
	return e.status
}

// Timestamp returns the instant of the transition.
func (e StatusHistoryEntry) Timestamp() kernel.Timestamp {
	return e.timestamp
}

// Notes returns the human-readable notes of the entry.
func (e StatusHistoryEntry) Notes() string {
	return e.notes
}

// Document returns the entry's document store representation.
func (e StatusHistoryEntry) Document() kernel.Document {
	return kernel.Document{
		HistoryFieldStatus:    e.status.Code(),
		HistoryFieldTimestamp: e.timestamp.Millis(),
		HistoryFieldNotes:     e.notes,
	}
}
