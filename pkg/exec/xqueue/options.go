package xqueue

// Option 定义 Queue 可选配置函数类型。
type Option func(*options)

type options struct {
	capacity int // 0 表示无界
}

func defaultOptions() *options {
	return &options{capacity: 0}
}

// WithCapacity 设置队列容量上界。
// n > 0 时队列有界，满时 Push 返回 ErrFull。
// 默认无界。n 为负数时 New 返回 ErrInvalidCapacity。
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
