package offering

import "github.com/m04kA/SMC-SessionBooking/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
