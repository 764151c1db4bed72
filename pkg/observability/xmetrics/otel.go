package xmetrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultInstrumentationName = "github.com/omeyang/taskx/pkg/observability/xmetrics"

	metricTaskTotal    = "taskx.task.total"
	metricTaskDuration = "taskx.task.duration"
	metricQueueDepth   = "taskx.queue.depth"

	attrKeyPool    = "pool"
	attrKeyOutcome = "outcome"
	attrKeyTaskID  = "task.id"
)

type otelConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Observer 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithTracerProvider 设置 TracerProvider，默认使用全局 provider。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认使用全局 provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// NewOTelObserver 创建基于 OpenTelemetry 的 Observer。
func NewOTelObserver(opts ...Option) (Observer, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(cfg.instrumentationName)
	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	total, err := meter.Int64Counter(
		metricTaskTotal,
		metric.WithDescription("total tasks by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create counter failed: %w", err)
	}

	duration, err := meter.Float64Histogram(
		metricTaskDuration,
		metric.WithDescription("task execution duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create histogram failed: %w", err)
	}

	depth, err := meter.Int64Gauge(
		metricQueueDepth,
		metric.WithDescription("current queue depth"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create gauge failed: %w", err)
	}

	return &otelObserver{
		tracer:   tracer,
		total:    total,
		duration: duration,
		depth:    depth,
	}, nil
}

type otelObserver struct {
	tracer   trace.Tracer
	total    metric.Int64Counter
	duration metric.Float64Histogram
	depth    metric.Int64Gauge
}

var _ Observer = (*otelObserver)(nil)

// TaskQueued 目前仅保留扩展点：入队计数由 QueueDepth 覆盖，
// 任务总量在 TaskFinished 统一记录，避免双重计数。
func (o *otelObserver) TaskQueued(_ context.Context, _ Info) {}

// TaskStarted 为任务创建 span，span 随返回的 ctx 传递。
func (o *otelObserver) TaskStarted(ctx context.Context, info Info) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = o.tracer.Start(ctx, "taskx.task",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(attrKeyPool, info.Pool),
			attribute.String(attrKeyTaskID, info.ID),
		),
	)
	return ctx
}

// TaskFinished 记录结果计数和耗时，并结束 TaskStarted 创建的 span。
// 未执行即取消的任务没有 span（TaskStarted 未被调用），
// SpanFromContext 返回 noop span，End 是安全的空操作。
func (o *otelObserver) TaskFinished(ctx context.Context, info Info, outcome Outcome, elapsed time.Duration, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	attrs := metric.WithAttributes(
		attribute.String(attrKeyPool, info.Pool),
		attribute.String(attrKeyOutcome, string(outcome)),
	)
	o.total.Add(ctx, 1, attrs)
	if outcome != OutcomeCancelled || elapsed > 0 {
		o.duration.Record(ctx, elapsed.Seconds(), attrs)
	}

	span := trace.SpanFromContext(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(outcome))
	} else if outcome == OutcomeOK {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// QueueDepth 记录当前队列深度。
func (o *otelObserver) QueueDepth(pool string, depth int64) {
	o.depth.Record(context.Background(), depth,
		metric.WithAttributes(attribute.String(attrKeyPool, pool)))
}
