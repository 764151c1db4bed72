// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xmetrics: 任务生命周期观测接口与 OpenTelemetry 实现
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 观测是注入式的：不注入观测器时核心路径零开销
//   - 指标属性保持低基数（池名、结果分类）
package observability
