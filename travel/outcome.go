package travel

import (
	"time"

	"github.com/google/uuid"
)

// Result values recorded in the flight journal.
const (
	ResultArrived   = "arrived"
	ResultCancelled = "cancelled"
	ResultEmergency = "emergency"
)

// Outcome is the journal record of one travel attempt. Phase holds the
// phase at the moment the attempt ended, so aborted flights show how
// far they got.
type Outcome struct {
	AttemptID uuid.UUID
	SectionID string
	Result    string
	Phase     string
	StartedAt time.Time
	EndedAt   time.Time
}

// Recorder persists flight outcomes. Implementations must not block
// the caller; the coordinator records from the main loop.
type Recorder interface {
	Record(o Outcome)
}
