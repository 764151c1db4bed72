// Package xretry 提供任务级重试：在单个已提交任务内部按策略重试
// 回调，失败分类决定是否继续。
//
// 底层使用 avast/retry-go/v5。重试发生在任务回调内部，对执行器
// 透明：一次 Submit 仍对应一个 Handle，Handle 结算的是最终结果。
//
// # 错误分类
//
// 回调返回的错误按以下规则决定是否重试：
//   - 实现 RetryableError 接口的错误按 Retryable() 判断；
//   - NewPermanentError 包装的错误不重试；
//   - NewTemporaryError 包装的错误重试；
//   - ctx 取消或到期立即终止；
//   - 其余错误默认视为可重试。
//
// # 使用方式
//
//	policy := xretry.NewPolicy(
//	    xretry.WithAttempts(5),
//	    xretry.WithDelay(100*time.Millisecond),
//	)
//	h, err := xretry.Submit(exec, policy, func(ctx context.Context) (int, error) {
//	    return fetchOnce(ctx)
//	})
//
// 直接在当前 goroutine 重试时使用 Policy.Do / DoWithData。
package xretry
