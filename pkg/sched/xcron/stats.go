package xcron

import (
	"sync"
	"time"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeFailure
	outcomeCancelled
)

// JobStats 是单个任务的执行统计快照。
type JobStats struct {
	// Runs 总触发次数。
	Runs int64
	// Succeeded 成功次数。
	Succeeded int64
	// Failed 失败次数（含提交被拒绝）。
	Failed int64
	// Cancelled 被取消次数（含超时取消）。
	Cancelled int64
	// TotalDuration 累计执行时长。
	TotalDuration time.Duration
	// LastRun 最近一次触发的完成时间。
	LastRun time.Time
}

// AvgDuration 返回平均执行时长，无记录时为 0。
func (js JobStats) AvgDuration() time.Duration {
	if js.Runs == 0 {
		return 0
	}
	return js.TotalDuration / time.Duration(js.Runs)
}

// Stats 聚合所有定时任务的执行统计。并发安全。
type Stats struct {
	mu   sync.RWMutex
	jobs map[string]*JobStats
}

func newStats() *Stats {
	return &Stats{jobs: make(map[string]*JobStats)}
}

func (s *Stats) record(job string, o outcome, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	js := s.jobs[job]
	if js == nil {
		js = &JobStats{}
		s.jobs[job] = js
	}
	js.Runs++
	switch o {
	case outcomeSuccess:
		js.Succeeded++
	case outcomeFailure:
		js.Failed++
	case outcomeCancelled:
		js.Cancelled++
	}
	js.TotalDuration += elapsed
	js.LastRun = time.Now()
}

// Job 返回指定任务的统计快照，未知任务名返回零值。
func (s *Stats) Job(name string) JobStats {
	if s == nil {
		return JobStats{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if js := s.jobs[name]; js != nil {
		return *js
	}
	return JobStats{}
}

// Jobs 返回全部任务的统计快照。
func (s *Stats) Jobs() map[string]JobStats {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]JobStats, len(s.jobs))
	for name, js := range s.jobs {
		out[name] = *js
	}
	return out
}

// TotalRuns 返回所有任务的总触发次数。
func (s *Stats) TotalRuns() int64 {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, js := range s.jobs {
		total += js.Runs
	}
	return total
}
