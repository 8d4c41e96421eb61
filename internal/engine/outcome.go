package engine

import (
	"github.com/danieljhkim/combos/internal/placement"
	"github.com/danieljhkim/combos/internal/planner"
)

// Status is how an interactive command ended.
type Status int

const (
	// Succeeded means the command ran to completion.
	Succeeded Status = iota
	// Cancelled means the user backed out or a precondition failed before
	// anything changed.
	Cancelled
	// Failed means the command hit an error.
	Failed
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of an interactive command.
type Outcome struct {
	Status Status

	// Report is the message shown to the user, possibly empty
	Report string

	// Err is set when Status is Failed
	Err error

	// Plan is set for placements, dry run or not
	Plan *planner.Plan

	// Placement is set after a committed placement
	Placement *placement.Result
}

func succeeded(report string) Outcome {
	return Outcome{Status: Succeeded, Report: report}
}

func cancelled(report string) Outcome {
	return Outcome{Status: Cancelled, Report: report}
}

func failed(err error) Outcome {
	return Outcome{Status: Failed, Report: err.Error(), Err: err}
}
