package xexec

// Stats 是执行器运行统计的一致性快照。
// 计数自执行器创建起累计，不随任务结算回收。
type Stats struct {
	// Workers 是 worker 数量。
	Workers int
	// QueueLen 是快照时刻队列中等待执行的任务数。
	QueueLen int
	// Submitted 是成功入队的任务总数。
	Submitted int64
	// Completed 是结算为 Ready 的任务总数。
	Completed int64
	// Failed 是结算为 Failed 的任务总数（含 panic）。
	Failed int64
	// Cancelled 是结算为 Cancelled 的任务总数。
	Cancelled int64
	// Rejected 是被拒绝的提交总数（执行器已关闭或队列已满）。
	Rejected int64
}
