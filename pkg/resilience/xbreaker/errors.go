package xbreaker

import (
	"errors"
	"fmt"

	"github.com/sony/gobreaker/v2"
)

var (
	// ErrNilBreaker 传入的 Breaker 为 nil。
	ErrNilBreaker = errors.New("xbreaker: breaker cannot be nil")

	// ErrNilContext 传入的 context 为 nil。
	ErrNilContext = errors.New("xbreaker: context cannot be nil")

	// ErrNilFunc 传入的操作函数为 nil。
	ErrNilFunc = errors.New("xbreaker: function cannot be nil")

	// ErrEmptyName 熔断器名称为空。
	ErrEmptyName = errors.New("xbreaker: breaker name cannot be empty")
)

// BreakerError 熔断器错误包装类型。
//
// 包装 gobreaker 的 ErrOpenState / ErrTooManyRequests，并实现
// Retryable() false，使 xretry 不对熔断器拦截做退避重试。
// 熔断器错误应该快速失败，而不是继续重试。
type BreakerError struct {
	Err   error  // 原始错误（ErrOpenState 或 ErrTooManyRequests）
	Name  string // 熔断器名称
	State State  // 错误发生时的熔断器状态
}

// Error 实现 error 接口。
func (e *BreakerError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("breaker %s: %v", e.Name, e.Err)
	}
	return e.Err.Error()
}

// Unwrap 实现 errors.Unwrap 接口。
func (e *BreakerError) Unwrap() error {
	return e.Err
}

// Retryable 实现 xretry.RetryableError 接口，熔断器错误不可重试。
func (e *BreakerError) Retryable() bool {
	return false
}

// wrapBreakerError 如果是熔断器 sentinel 错误则包装，否则原样返回。
//
// 只包装直接的 sentinel error，不用 errors.Is 遍历错误链，
// 避免嵌套熔断器场景下把内层错误归因到外层。
// 状态从错误类型推导而非实时查询，避免 TOCTOU 竞态。
func wrapBreakerError(err error, name string) error {
	if err == nil {
		return nil
	}

	var be *BreakerError
	if errors.As(err, &be) {
		return err
	}

	if err == gobreaker.ErrOpenState {
		return &BreakerError{Err: err, Name: name, State: StateOpen}
	}
	if err == gobreaker.ErrTooManyRequests {
		return &BreakerError{Err: err, Name: name, State: StateHalfOpen}
	}
	return err
}

// IsOpen 检查错误是否是熔断器打开错误。
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState)
}

// IsTooManyRequests 检查错误是否是半开状态下的限流错误。
func IsTooManyRequests(err error) bool {
	return errors.Is(err, gobreaker.ErrTooManyRequests)
}

// IsBreakerError 检查错误是否由熔断器产生（而非业务回调）。
func IsBreakerError(err error) bool {
	return IsOpen(err) || IsTooManyRequests(err)
}
