package schedulers

import (
	"errors"
	"fmt"
)

// EmptyInputError is returned when a batch has no processes to schedule.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "no processes to schedule"
}

var ErrEmptyInput error = EmptyInputError{}

// InvalidProcessError identifies the first process of a batch whose timing is unusable.
type InvalidProcessError struct {
	ProcessID int
	Field     string
	Value     int
}

func (e *InvalidProcessError) Error() string {
	switch e.Field {
	case "burst_time":
		return fmt.Sprintf("process %d: burst time must be positive, got %d", e.ProcessID, e.Value)
	case "arrival_time":
		return fmt.Sprintf("process %d: arrival time must not be negative, got %d", e.ProcessID, e.Value)
	case "finish_time":
		return fmt.Sprintf("process %d: finish time overflows when starting at %d", e.ProcessID, e.Value)
	}
	return fmt.Sprintf("process %d: invalid %s %d", e.ProcessID, e.Field, e.Value)
}

// ErrorReason labels a scheduling error for logs and metrics.
func ErrorReason(err error) string {
	var invalid *InvalidProcessError
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.As(err, &invalid):
		return "invalid_process"
	}
	return "unknown"
}
