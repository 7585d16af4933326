package operators

import (
	"errors"
	"testing"

	"github.com/huangsam/wily/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownMetrics(t *testing.T) {
	for _, tc := range []struct {
		metricID  string
		operator  string
		title     string
		valueType schema.ValueType
		direction schema.Direction
	}{
		{"raw.loc", "raw", "Lines of Code", schema.NumericValue, schema.AimLow},
		{"cyclomatic.complexity", "cyclomatic", "Cyclomatic Complexity", schema.NumericValue, schema.AimLow},
		{"maintainability.mi", "maintainability", "Maintainability Index", schema.NumericValue, schema.AimHigh},
		{"maintainability.rank", "maintainability", "Maintainability Ranking", schema.CategoricalValue, schema.Informational},
		{"halstead.effort", "halstead", "Effort", schema.NumericValue, schema.AimLow},
	} {
		t.Run(tc.metricID, func(t *testing.T) {
			desc, err := Resolve(tc.metricID)
			require.NoError(t, err)
			assert.Equal(t, tc.operator, desc.Operator)
			assert.Equal(t, tc.title, desc.Title)
			assert.Equal(t, tc.valueType, desc.ValueType)
			assert.Equal(t, tc.direction, desc.Direction)
		})
	}
}

func TestResolveUnknownMetrics(t *testing.T) {
	for _, metricID := range []string{
		"raw.nope",          // known operator, unknown key
		"astro.loc",         // unknown operator
		"loc",               // no dot
		"",                  // empty
		"maintainability.",  // empty key
		".mi",               // empty operator
	} {
		t.Run("id="+metricID, func(t *testing.T) {
			_, err := Resolve(metricID)
			require.Error(t, err)

			var unknown *UnknownMetricError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, metricID, unknown.MetricID)
		})
	}
}

func TestDefaultMetricsResolve(t *testing.T) {
	for _, metricID := range schema.DefaultMetrics {
		_, err := Resolve(metricID)
		assert.NoError(t, err, metricID)
	}
}

func TestAllIsSortedAndComplete(t *testing.T) {
	ops := All()
	require.Len(t, ops, 4)
	assert.Equal(t, "cyclomatic", ops[0].Name)
	assert.Equal(t, "halstead", ops[1].Name)
	assert.Equal(t, "maintainability", ops[2].Name)
	assert.Equal(t, "raw", ops[3].Name)
}
