package mock

import "github.com/fwojciec/lecturekit"

var _ lecturekit.PlanLocator = (*PlanLocator)(nil)

// PlanLocator is a mock implementation of lecturekit.PlanLocator.
type PlanLocator struct {
	LocateFn func(lines lecturekit.Lines) (*lecturekit.SplitPlan, error)
}

func (l *PlanLocator) Locate(lines lecturekit.Lines) (*lecturekit.SplitPlan, error) {
	return l.LocateFn(lines)
}
