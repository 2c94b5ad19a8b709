package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

// TimeSlot вычисляемый слот для записи. Никогда не сохраняется.
// Инвариант: IsBooked == true влечет IsAvailable == false.
type TimeSlot struct {
	Date        string           `json:"date"` // YYYY-MM-DD
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
	IsAvailable bool             `json:"isAvailable"`
	IsBooked    bool             `json:"isBooked"`
}

// MarkBooked помечает слот занятым
func (s *TimeSlot) MarkBooked() {
	s.IsBooked = true
	s.IsAvailable = false
}

// Matches проверяет совпадение по дате и времени начала
func (s *TimeSlot) Matches(date string, start types.TimeString) bool {
	return s.Date == date && s.StartTime == start
}

// AvailabilityException явная запись о недоступности консультанта в слот
type AvailabilityException struct {
	ID          int64
	ProviderID  uuid.UUID
	Date        time.Time
	StartTime   types.TimeString
	IsAvailable bool
}
