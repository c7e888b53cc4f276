package limitmetrics

import (
	"testing"

	"github.com/aryangodara/limits"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Override(t *testing.T) {
	rec, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	r := limits.NewRegistry(limits.WithEvaluationOverride(rec.Override(nil)))
	_, err = r.Register("open", limits.Always)
	require.NoError(t, err)
	_, err = r.Register("closed", limits.Always, limits.Never)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		ok, err := r.Within("open")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := r.Within("closed")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.evaluations.WithLabelValues("open", "Truthy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.evaluations.WithLabelValues("closed", "Falsy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.shortCircuits.WithLabelValues("closed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.shortCircuits.WithLabelValues("open")))
}

func TestRecorder_OverrideChainsNext(t *testing.T) {
	rec, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	force := func(proposed bool, l *limits.Limit, failing limits.Condition) bool { return true }
	r := limits.NewRegistry(limits.WithEvaluationOverride(rec.Override(force)))

	ok, err := r.Within("missing")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.evaluations.WithLabelValues("missing", "Truthy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.shortCircuits.WithLabelValues("missing")))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
