package axes

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrInvariant     = errors.New("invariant violation")
)

// ConfigurationError reports an axis or plot that can not be used in its
// current state: unset ranges, non positive bounds on a log axis, missing axes.
type ConfigurationError struct {
	Op     string
	Reason string
}

func configError(op, reason string, args ...any) error {
	return ConfigurationError{
		Op:     op,
		Reason: fmt.Sprintf(reason, args...),
	}
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e ConfigurationError) Is(err error) bool {
	return err == ErrConfiguration
}

// InvariantError reports an internal inconsistency detected during a layout
// pass.
type InvariantError struct {
	Op     string
	Reason string
}

func invariantError(op, reason string, args ...any) error {
	return InvariantError{
		Op:     op,
		Reason: fmt.Sprintf(reason, args...),
	}
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Op, e.Reason)
}

func (e InvariantError) Is(err error) bool {
	return err == ErrInvariant
}
