package flowpipe

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestUseMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	plugin, err := UseMetrics[int, int](MetricsConfig{
		Name:       "double",
		Registerer: reg,
	})
	require.NoError(t, err)

	wrapped := plugin.Wrap(double())

	got, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice([]int{1, 2, 3})))
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, got)

	m := plugin.(*metricsPlugin[int, int])
	require.Equal(t, 3.0, testutil.ToFloat64(m.elements))
	require.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("completed")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.runs.WithLabelValues("failed")))
}

func TestUseMetrics_Failure(t *testing.T) {
	reg := prometheus.NewRegistry()
	plugin, err := UseMetrics[int, int](MetricsConfig{Registerer: reg})
	require.NoError(t, err)

	boom := errors.New("boom")
	failing := Map(func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})

	_, err = CollectSlice(plugin.Wrap(failing).Apply(context.Background(), FromSlice([]int{1, 2, 3})))
	require.ErrorIs(t, err, boom)

	m := plugin.(*metricsPlugin[int, int])
	require.Equal(t, 1.0, testutil.ToFloat64(m.elements))
	require.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("failed")))
}

func TestUseMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := UseMetrics[int, int](MetricsConfig{Registerer: reg})
	require.NoError(t, err)

	_, err = UseMetrics[int, int](MetricsConfig{Registerer: reg})
	require.Error(t, err)
}

func TestUseMetrics_MultipleRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	plugin, err := UseMetrics[int, int](MetricsConfig{Registerer: reg})
	require.NoError(t, err)

	wrapped := plugin.Wrap(addOne())
	for range 5 {
		_, err := CollectSlice(wrapped.Apply(context.Background(), FromSlice([]int{1, 2})))
		require.NoError(t, err)
	}

	m := plugin.(*metricsPlugin[int, int])
	require.Equal(t, 10.0, testutil.ToFloat64(m.elements))
	require.Equal(t, 5.0, testutil.ToFloat64(m.runs.WithLabelValues("completed")))
}
