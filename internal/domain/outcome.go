package domain

import "fmt"

// OutcomeStatus classifies the result of calling an optional capability.
type OutcomeStatus int

const (
	// OutcomeOK means the capability ran and produced Value.
	OutcomeOK OutcomeStatus = iota
	// OutcomeAbsent means the capability or the thing it looked for does not exist.
	OutcomeAbsent
	// OutcomeFailed means the capability exists but the call did not succeed.
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeOK:
		return "ok"
	case OutcomeAbsent:
		return "absent"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is returned by capability ports in place of a swallowed error.
// Callers treat anything but OutcomeOK as "no value" and carry on.
type Outcome struct {
	Status OutcomeStatus
	Value  string
	Err    error
}

func Succeeded(value string) Outcome {
	return Outcome{Status: OutcomeOK, Value: value}
}

func Absent(format string, args ...any) Outcome {
	return Outcome{Status: OutcomeAbsent, Err: fmt.Errorf(format, args...)}
}

func Failed(err error) Outcome {
	return Outcome{Status: OutcomeFailed, Err: err}
}

func (o Outcome) OK() bool { return o.Status == OutcomeOK }

// String returns Value when the outcome succeeded and "" otherwise.
func (o Outcome) String() string {
	if o.Status != OutcomeOK {
		return ""
	}
	return o.Value
}
