// Package xbreaker 提供任务级熔断：熔断器打开时任务快速失败，
// 不占用 worker 执行真实回调。
//
// 底层使用 sony/gobreaker/v2。Breaker 按名称隔离统计，可被多个
// 任务并发共享；熔断判定通过 TripPolicy 接口抽象，内置连续失败
// 和失败率两种策略。
//
// # 与 xretry 的配合
//
// 熔断器打开时返回的 *BreakerError 实现 Retryable() false，
// xretry 不会对其退避重试，保证快速失败语义。
//
// # 使用方式
//
//	breaker := xbreaker.New[string]("payment",
//	    xbreaker.WithTripPolicy(xbreaker.NewConsecutiveFailures(5)),
//	    xbreaker.WithTimeout(30*time.Second),
//	)
//	h, err := xbreaker.Submit(exec, breaker, func(ctx context.Context) (string, error) {
//	    return callPayment(ctx)
//	})
package xbreaker
