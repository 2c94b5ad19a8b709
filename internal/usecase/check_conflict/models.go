package check_conflict

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

// Request модель запроса на проверку пересечения
type Request struct {
	ProviderID uuid.UUID        // ID консультанта
	Date       time.Time        // Дата сессии
	StartTime  types.TimeString // Начало проверяемой сессии
}

// Response модель ответа
type Response struct {
	Conflict      bool       // true, если кандидат пересекается хотя бы с одной записью
	ConflictsWith []Interval // Записи, с которыми есть пересечение
}

// Interval интервал в минутах от полуночи, [Start, End)
type Interval struct {
	Start int
	End   int
}
