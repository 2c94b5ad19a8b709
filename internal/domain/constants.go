package domain

import "github.com/m04kA/SMC-SessionBooking/pkg/types"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Параметры сетки слотов
const (
	DefaultHorizonDays      = 30
	MaxHorizonDays          = 90
	DefaultSlotDurationMins = 60

	FallbackHorizonDays      = 7
	FallbackSlotDurationMins = 90

	// ConflictCandidateMins длительность проверяемой сессии в проверке пересечений
	ConflictCandidateMins = 90
)

// DefaultSlotTemplate фиксированные времена начала слотов в рабочий день.
// Не зависит от расписания конкретного консультанта.
var DefaultSlotTemplate = []types.TimeString{"09:30", "11:00", "13:00", "14:30", "16:00", "17:30"}

// FallbackSlotTemplate времена начала слотов запасной сетки
var FallbackSlotTemplate = []types.TimeString{"10:00", "14:00", "16:00", "18:00"}

// ProviderRole роль пользователя, которого можно забронировать
const ProviderRole = "consultant"

// Ограничения пользовательского ввода
const (
	MaxNotesLength = 1000
)
