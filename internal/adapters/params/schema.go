package params

import "github.com/ThalesGroup/requin-2023-experiment/internal/domain"

// paramsSchema mirrors the snake_case keys of the JSON parameter file. All
// fields are pointers so absent keys fall back to the condition defaults.
type paramsSchema struct {
	SessionDurationMinutes     *int `mapstructure:"session_duration_minutes"`
	MinSecondsEventDiff        *int `mapstructure:"min_seconds_event_diff"`
	MaxSecondsEventDiff        *int `mapstructure:"max_seconds_event_diff"`
	MinSecondsFailFixResman    *int `mapstructure:"min_seconds_failfix_resman"`
	MaxSecondsFailFixResman    *int `mapstructure:"max_seconds_failfix_resman"`
	MinSecondsToIndicateNoComm *int `mapstructure:"min_seconds_to_indicate_no_comm"`
	SecondsBeforeCommStop      *int `mapstructure:"seconds_before_comm_stop"`
	SecondsAfterCommStart      *int `mapstructure:"seconds_after_comm_start"`
	NPumpFailures              *int `mapstructure:"n_pump_failures"`
	NOwnComm                   *int `mapstructure:"n_own_comm"`
	NOtherComm                 *int `mapstructure:"n_other_comm"`
	NGreenRedIssues            *int `mapstructure:"n_green_red_issues"`
	NSystemsUpDown             *int `mapstructure:"n_systems_up_down"`
	TotalAutoMinutes           *int `mapstructure:"total_auto_minutes"`
}

func (s paramsSchema) overlay(base domain.SessionParams) domain.SessionParams {
	apply := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&base.SessionDurationMinutes, s.SessionDurationMinutes)
	apply(&base.MinSecondsEventDiff, s.MinSecondsEventDiff)
	apply(&base.MaxSecondsEventDiff, s.MaxSecondsEventDiff)
	apply(&base.MinSecondsFailFixResman, s.MinSecondsFailFixResman)
	apply(&base.MaxSecondsFailFixResman, s.MaxSecondsFailFixResman)
	apply(&base.MinSecondsToIndicateNoComm, s.MinSecondsToIndicateNoComm)
	apply(&base.SecondsBeforeCommStop, s.SecondsBeforeCommStop)
	apply(&base.SecondsAfterCommStart, s.SecondsAfterCommStart)
	apply(&base.NPumpFailures, s.NPumpFailures)
	apply(&base.NOwnComm, s.NOwnComm)
	apply(&base.NOtherComm, s.NOtherComm)
	apply(&base.NGreenRedIssues, s.NGreenRedIssues)
	apply(&base.NSystemsUpDown, s.NSystemsUpDown)
	apply(&base.TotalAutoMinutes, s.TotalAutoMinutes)
	return base
}
