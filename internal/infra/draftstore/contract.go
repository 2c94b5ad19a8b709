package draftstore

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// MetricsRecorder приемник метрик операций с черновиком (реализуется *metrics.Metrics)
type MetricsRecorder interface {
	ObserveDraftOperation(operation string, err error)
}
