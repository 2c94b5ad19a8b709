package get_available_slots

import (
	"strconv"

	"github.com/google/uuid"

	getAvailableSlots "github.com/m04kA/SMC-SessionBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ConsultantID string          `json:"consultantId"`
	UsedFallback bool            `json:"usedFallback"`
	Slots        []AvailableSlot `json:"slots"`
	Notices      []notice.Notice `json:"notices"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(consultantID uuid.UUID, resp *getAvailableSlots.Response, notices []notice.Notice) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Date:        slot.Date,
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
			IsBooked:    slot.IsBooked,
		}
	}

	return &AvailableSlotsResponse{
		ConsultantID: consultantID.String(),
		UsedFallback: resp.UsedFallback,
		Slots:        slots,
		Notices:      notices,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустой horizonDays означает горизонт по умолчанию.
func ToUseCaseRequest(consultantID uuid.UUID, horizonStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{ProviderID: consultantID}
	if horizonStr == "" {
		return req, nil
	}

	horizon, err := strconv.Atoi(horizonStr)
	if err != nil {
		return nil, err
	}
	req.HorizonDays = horizon

	return req, nil
}
