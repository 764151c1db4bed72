package xmetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectMetrics(t *testing.T, reader *metric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func metricNames(rm metricdata.ResourceMetrics) map[string]bool {
	names := make(map[string]bool)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			names[m.Name] = true
		}
	}
	return names
}

func TestOTelObserver_RecordsMetrics(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	obs, err := NewOTelObserver(WithMeterProvider(provider))
	require.NoError(t, err)

	info := Info{ID: "42", Pool: "test"}
	ctx := obs.TaskStarted(context.Background(), info)
	obs.TaskFinished(ctx, info, OutcomeOK, 5*time.Millisecond, nil)
	obs.QueueDepth("test", 7)

	names := metricNames(collectMetrics(t, reader))
	assert.True(t, names[metricTaskTotal], "missing %s", metricTaskTotal)
	assert.True(t, names[metricTaskDuration], "missing %s", metricTaskDuration)
	assert.True(t, names[metricQueueDepth], "missing %s", metricQueueDepth)
}

func TestOTelObserver_ErrorOutcome(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	obs, err := NewOTelObserver(WithMeterProvider(provider))
	require.NoError(t, err)

	info := Info{ID: "1", Pool: "test"}
	ctx := obs.TaskStarted(context.Background(), info)
	obs.TaskFinished(ctx, info, OutcomeError, time.Millisecond, errors.New("boom"))

	names := metricNames(collectMetrics(t, reader))
	assert.True(t, names[metricTaskTotal])
}

func TestOTelObserver_CancelledWithoutStart(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	obs, err := NewOTelObserver(WithMeterProvider(provider))
	require.NoError(t, err)

	// 未执行即取消：没有 TaskStarted，TaskFinished 必须安全
	assert.NotPanics(t, func() {
		obs.TaskFinished(context.Background(), Info{ID: "1", Pool: "p"}, OutcomeCancelled, 0, nil)
	})
}

func TestNewOTelObserver_Options(t *testing.T) {
	obs, err := NewOTelObserver(
		WithInstrumentationName("custom"),
		nil, // nil option 被忽略
	)
	require.NoError(t, err)
	assert.NotNil(t, obs)
}
