package events

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

// TimestampLayout is used when records are rendered as text
const TimestampLayout = "2006-01-02 15:04:05.000"

type Kind string

const (
	KindInfo      Kind = "info"
	KindViolation Kind = "violation"
	KindAction    Kind = "action"
)

var knownKinds = []Kind{KindInfo, KindViolation, KindAction}

func IsKnownKind(kind Kind) bool {
	return slices.Contains(knownKinds, kind)
}

// Record is a single entry of the event log
type Record struct {
	// Sequence is the 1-based position of this record in the log
	Sequence  uint64    `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
}

// String renders the record as a single line of the text export
func (r Record) String() string {
	return fmt.Sprintf("[%s] %s", r.Timestamp.Format(TimestampLayout), r.Message)
}
