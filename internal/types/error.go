package types

import "errors"

// CommitteeUnavailableError indicates that every committee endpoint
// candidate failed or returned no usable rows. It is fatal: the staking
// computation cannot proceed without a committee.
type CommitteeUnavailableError struct {
	Message string
}

func (e *CommitteeUnavailableError) Error() string {
	return e.Message
}

func IsCommitteeUnavailableError(err error) bool {
	var target *CommitteeUnavailableError
	return errors.As(err, &target)
}
