package ports

import "github.com/ThalesGroup/requin-2023-experiment/internal/domain"

// ParamSource resolves the session parameters for a difficulty condition.
type ParamSource interface {
	Params(condition string) (domain.SessionParams, error)
}
