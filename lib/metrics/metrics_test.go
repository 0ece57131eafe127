package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	require.Equal(t, ResultSuccess, Result(nil))
	require.Equal(t, ResultFailure, Result(errors.New("boom")))
}

func TestSubmissions(t *testing.T) {
	before := testutil.ToFloat64(Submissions.WithLabelValues(ResultRejected))
	Submissions.WithLabelValues(ResultRejected).Inc()
	require.Equal(t, before+1, testutil.ToFloat64(Submissions.WithLabelValues(ResultRejected)))
}
