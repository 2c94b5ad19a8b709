package wizard_view

import (
	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

// WizardResponse состояние мастера записи для клиента
type WizardResponse struct {
	Step             int                     `json:"step"`
	StepName         string                  `json:"stepName"`
	SelectedProvider *domain.Provider        `json:"selectedConsultant"`
	SelectedService  *domain.ServiceOffering `json:"selectedSessionType"`
	SelectedDate     string                  `json:"selectedDate,omitempty"`
	SelectedSlot     *Slot                   `json:"selectedSlot"`
	SessionMode      string                  `json:"sessionMode"`
	AvailableDates   []string                `json:"availableDates"`
	Slots            []Slot                  `json:"slots"`
	UsedFallback     bool                    `json:"usedFallback"`
	Notices          []notice.Notice         `json:"notices"`
}

// Slot модель временного слота
type Slot struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// FromView конвертирует состояние мастера в HTTP response
func FromView(view *wizard.View, notices []notice.Notice) *WizardResponse {
	slots := make([]Slot, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = fromSlot(s)
	}

	resp := &WizardResponse{
		Step:             int(view.Draft.CurrentStep),
		StepName:         view.Draft.CurrentStep.String(),
		SelectedProvider: view.Draft.SelectedProvider,
		SelectedService:  view.Draft.SelectedService,
		SelectedDate:     view.Draft.SelectedDate,
		SessionMode:      string(view.Draft.SessionMode),
		AvailableDates:   view.Dates,
		Slots:            slots,
		UsedFallback:     view.UsedFallback,
		Notices:          notices,
	}
	if view.Draft.SelectedSlot != nil {
		s := fromSlot(*view.Draft.SelectedSlot)
		resp.SelectedSlot = &s
	}

	return resp
}

func fromSlot(s domain.TimeSlot) Slot {
	return Slot{
		Date:        s.Date,
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		IsAvailable: s.IsAvailable,
		IsBooked:    s.IsBooked,
	}
}
