package recorder

import (
	"time"

	"github.com/google/uuid"
)

// RunRecord is one served analysis: which command ran, where its data came
// from and what it recommended. Prices are not stored.
type RunRecord struct {
	ID        uuid.UUID
	Timestamp time.Time
	Command   string // analyze, invest, search, auto_update
	Args      string
	Source    string // live or simulated
	Regime    string
	Count     int
	TopName   string
	TopScore  int
	AvgScore  float64
}

// NewRunRecord stamps a record with a fresh ID and the current time.
func NewRunRecord(command, args string) *RunRecord {
	return &RunRecord{ID: uuid.New(), Timestamp: time.Now(), Command: command, Args: args}
}

// Recorder persists the analysis run log.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
