package logger

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/yoockh/jardam/internal/metrics"
)

func Test_New_ParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("DEBUG").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("warning").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
}

func Test_ErrorEntries_AreCountedByType(t *testing.T) {
	l := New("info")
	l.SetOutput(io.Discard)

	before := testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeDB))
	l.WithField(ErrorTypeField, ErrorTypeDB).Error("query failed")
	l.Warn("not counted")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeDB)))
}
