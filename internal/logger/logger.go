package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/metrics"
)

// ErrorTypeField groups error entries in the jardam_errors_total metric.
const ErrorTypeField = "error_type"

const (
	ErrorTypeDB      = "db"
	ErrorTypeHTTP    = "http"
	ErrorTypeStorage = "storage"
)

func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(parseLevel(level))
	l.AddHook(&prometheusHook{})
	return l
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type prometheusHook struct{}

func (h *prometheusHook) Fire(entry *logrus.Entry) error {
	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		errorType = "unknown"
	}
	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *prometheusHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.ErrorLevel,
		logrus.FatalLevel,
		logrus.PanicLevel,
	}
}
