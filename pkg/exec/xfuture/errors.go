package xfuture

import "errors"

var (
	// ErrAlreadySettled 表示 Future 已被结算，第二次写入被拒绝。
	// 这是调用方的编程错误，已存储的结果不受影响。
	ErrAlreadySettled = errors.New("xfuture: future already settled")

	// ErrCancelled 表示任务在执行前被放弃或因停止请求被中止。
	// Get 在 Cancelled 状态下返回此错误。
	ErrCancelled = errors.New("xfuture: task cancelled")

	// ErrNilFuture 表示在 nil Future 上调用方法。
	ErrNilFuture = errors.New("xfuture: nil future (use New to create)")

	// ErrNilError 表示 SetError 收到 nil 错误。
	// 失败结算必须携带非 nil 错误，否则消费者无法区分成败。
	ErrNilError = errors.New("xfuture: SetError requires a non-nil error")
)
