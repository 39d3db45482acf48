package domain

import "fmt"

// SessionParams is the immutable configuration for one generation attempt.
type SessionParams struct {
	SessionDurationMinutes int

	MinSecondsEventDiff int
	MaxSecondsEventDiff int

	MinSecondsFailFixResman int
	MaxSecondsFailFixResman int

	MinSecondsToIndicateNoComm int
	SecondsBeforeCommStop      int
	SecondsAfterCommStart      int

	NPumpFailures   int
	NOwnComm        int
	NOtherComm      int
	NGreenRedIssues int
	NSystemsUpDown  int

	TotalAutoMinutes int
}

// DefaultSessionParams returns the baseline parameter set: a ten minute
// session with moderate event density.
func DefaultSessionParams() SessionParams {
	return SessionParams{
		SessionDurationMinutes:     10,
		MinSecondsEventDiff:        10,
		MaxSecondsEventDiff:        35,
		MinSecondsFailFixResman:    20,
		MaxSecondsFailFixResman:    90,
		MinSecondsToIndicateNoComm: 90,
		SecondsBeforeCommStop:      30,
		SecondsAfterCommStart:      5,
		NPumpFailures:              5,
		NOwnComm:                   5,
		NOtherComm:                 5,
		NGreenRedIssues:            6,
		NSystemsUpDown:             6,
		TotalAutoMinutes:           3,
	}
}

func (p SessionParams) SessionDurationSeconds() int {
	return p.SessionDurationMinutes * 60
}

func (p SessionParams) Validate() error {
	if p.SessionDurationMinutes <= 0 {
		return fmt.Errorf("session duration must be positive, got %d minutes", p.SessionDurationMinutes)
	}
	if p.MinSecondsEventDiff <= 0 {
		return fmt.Errorf("minimum event gap must be positive, got %d", p.MinSecondsEventDiff)
	}
	if p.MaxSecondsEventDiff <= p.MinSecondsEventDiff {
		return fmt.Errorf("maximum event gap %d must exceed minimum %d", p.MaxSecondsEventDiff, p.MinSecondsEventDiff)
	}
	if p.MaxSecondsFailFixResman <= p.MinSecondsFailFixResman {
		return fmt.Errorf("maximum fail/fix gap %d must exceed minimum %d", p.MaxSecondsFailFixResman, p.MinSecondsFailFixResman)
	}
	if p.TotalAutoMinutes*60 >= p.SessionDurationSeconds() {
		return fmt.Errorf("automation window of %d minutes does not fit a %d minute session", p.TotalAutoMinutes, p.SessionDurationMinutes)
	}
	if p.NPumpFailures < 0 || p.NOwnComm < 0 || p.NOtherComm < 0 || p.NGreenRedIssues < 0 || p.NSystemsUpDown < 0 {
		return fmt.Errorf("task counts must not be negative")
	}
	return nil
}

// SpacingRules feed the constraint checker. Thresholds not covered by the
// session parameters keep the experiment-wide defaults.
func (p SessionParams) SpacingRules() SpacingRules {
	rules := DefaultSpacingRules()
	rules.SessionDurationSeconds = p.SessionDurationSeconds()
	rules.SecondsBeforeCommStop = p.SecondsBeforeCommStop
	rules.SecondsAfterCommStart = p.SecondsAfterCommStart
	rules.MinSecondsFailFixResman = p.MinSecondsFailFixResman
	return rules
}
