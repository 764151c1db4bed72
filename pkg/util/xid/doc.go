// Package xid 提供进程内任务 ID 生成。
//
// 底层使用 [sony/sonyflake/v2] 生成紧凑、时间有序的 int64 ID，
// 适合作为任务标识在日志、指标和追踪中关联同一任务。
//
// # 时钟回拨
//
// sonyflake 在时钟回拨时拒绝生成 ID。Generator.Next 在有限时间内
// 以固定间隔重试等待时钟追上，超时返回 ErrClockBackwardTimeout。
// 时间分量溢出（ErrOverTimeLimit 包装）不可恢复，不会重试。
//
// # 降级
//
// NextString 在生成失败时降级为 UUID v4 字符串，保证调用方总能
// 拿到可用的任务 ID。需要严格区分成败的调用方应使用 Next。
//
// # 使用方式
//
//	gen, err := xid.NewGenerator()
//	if err != nil { ... }
//	id, err := gen.Next(ctx)
//
// [sony/sonyflake/v2]: https://github.com/sony/sonyflake
package xid
