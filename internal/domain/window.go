package domain

import (
	"fmt"
	"time"

	"dev-insights-service/internal/my_errors"
)

// Window is a half-open aggregation interval [Start, End).
type Window struct {
	Start time.Time `json:"period_start"`
	End   time.Time `json:"period_end"`
}

func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	if !w.End.After(w.Start) {
		return fmt.Errorf("%w: period_end must be after period_start", my_errors.ErrInvalidWindow)
	}
	return nil
}

// Contains reports whether t falls inside the half-open interval.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Weeks returns the window length in weeks, fractional.
func (w Window) Weeks() float64 {
	return w.End.Sub(w.Start).Hours() / (24 * 7)
}

// PeriodType labels the cadence a window was chosen for. It never changes
// computation logic, only which boundaries callers pick.
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodSprint  PeriodType = "sprint"
	PeriodMonthly PeriodType = "monthly"
)

func (p PeriodType) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodSprint, PeriodMonthly:
		return true
	}
	return false
}
