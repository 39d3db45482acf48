package domain

import "time"

// RunManifest records how a batch of scenario files was produced, so a session
// can be reproduced from its seeds alone.
type RunManifest struct {
	RunID     string
	CreatedAt time.Time
	Scenarios []ScenarioRecord
}

// ScenarioRecord describes one written scenario file.
type ScenarioRecord struct {
	File           string
	Condition      string
	Version        string
	Seed           int64
	Attempts       int
	TaskTypeCount  int
	EventTimeCount int
}
