package xcron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Record(t *testing.T) {
	s := newStats()
	s.record("a", outcomeSuccess, 10*time.Millisecond)
	s.record("a", outcomeFailure, 20*time.Millisecond)
	s.record("a", outcomeCancelled, 30*time.Millisecond)
	s.record("b", outcomeSuccess, time.Millisecond)

	a := s.Job("a")
	assert.Equal(t, int64(3), a.Runs)
	assert.Equal(t, int64(1), a.Succeeded)
	assert.Equal(t, int64(1), a.Failed)
	assert.Equal(t, int64(1), a.Cancelled)
	assert.Equal(t, 60*time.Millisecond, a.TotalDuration)
	assert.Equal(t, 20*time.Millisecond, a.AvgDuration())

	assert.Equal(t, int64(4), s.TotalRuns())
	assert.Len(t, s.Jobs(), 2)
}

func TestStats_UnknownJob(t *testing.T) {
	s := newStats()
	assert.Equal(t, JobStats{}, s.Job("missing"))
	assert.Zero(t, JobStats{}.AvgDuration())
}

func TestStats_NilReceiver(t *testing.T) {
	var s *Stats
	assert.Equal(t, JobStats{}, s.Job("x"))
	assert.Nil(t, s.Jobs())
	assert.Zero(t, s.TotalRuns())
}
