package domain

import (
	"testing"
	"time"

	"dev-insights-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	w, err := NewWindow(start, end)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w.Weeks(), 1e-9)

	_, err = NewWindow(end, start)
	assert.ErrorIs(t, err, my_errors.ErrInvalidWindow)

	_, err = NewWindow(start, start)
	assert.ErrorIs(t, err, my_errors.ErrInvalidWindow)
}

func TestWindow_Contains(t *testing.T) {
	w := Window{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestPeriodType_Valid(t *testing.T) {
	for _, p := range []PeriodType{PeriodDaily, PeriodWeekly, PeriodSprint, PeriodMonthly} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, PeriodType("quarterly").Valid())
	assert.False(t, PeriodType("").Valid())
}
