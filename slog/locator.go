// Package slog provides log/slog decorators for lecturekit services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/lecturekit"
)

// Ensure LoggingLocator implements lecturekit.PlanLocator.
var _ lecturekit.PlanLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a PlanLocator with logging of the located ranges.
type LoggingLocator struct {
	next   lecturekit.PlanLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next lecturekit.PlanLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the plan.
func (l *LoggingLocator) Locate(lines lecturekit.Lines) (plan *lecturekit.SplitPlan, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Info("locate split plan",
				"lines", len(lines),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		l.logger.Info("locate split plan",
			"lines", len(lines),
			"head", plan.Head.String(),
			"css", plan.CSS.String(),
			"body", plan.Body.String(),
			"js", plan.JS.String(),
			"tail", plan.Tail.String(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.Locate(lines)
}
