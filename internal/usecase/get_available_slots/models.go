package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// Request модель запроса на расчет слотов
type Request struct {
	ProviderID  uuid.UUID // ID консультанта
	HorizonDays int       // Количество дней вперед, включая сегодня. <= 0 - значение по умолчанию
}

// Response модель ответа с полной сеткой слотов
type Response struct {
	Slots        []domain.TimeSlot // Все слоты (свободные и занятые), по дате и времени начала
	UsedFallback bool              // true, если показана запасная сетка
}

// GridConfig параметры основной и запасной сетки слотов
type GridConfig struct {
	Location                *time.Location
	HorizonDays             int
	SlotTemplate            []string
	SlotDurationMinutes     int
	FallbackHorizonDays     int
	FallbackSlotTemplate    []string
	FallbackDurationMinutes int
}

// DefaultGridConfig сетка по умолчанию: 30 будних дней по шесть часовых слотов
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Location:                time.Local,
		HorizonDays:             domain.DefaultHorizonDays,
		SlotTemplate:            templateStrings(domain.DefaultSlotTemplate),
		SlotDurationMinutes:     domain.DefaultSlotDurationMins,
		FallbackHorizonDays:     domain.FallbackHorizonDays,
		FallbackSlotTemplate:    templateStrings(domain.FallbackSlotTemplate),
		FallbackDurationMinutes: domain.FallbackSlotDurationMins,
	}
}
