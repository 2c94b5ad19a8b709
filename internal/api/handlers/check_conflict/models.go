package check_conflict

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	checkConflict "github.com/m04kA/SMC-SessionBooking/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

// ConflictResponse HTTP response model
type ConflictResponse struct {
	ConsultantID  string     `json:"consultantId"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	Conflict      bool       `json:"conflict"`
	ConflictsWith []Interval `json:"conflictsWith"`
}

// Interval занятый интервал
type Interval struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(consultantID uuid.UUID, dateStr, startStr string) (*checkConflict.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}

	return &checkConflict.Request{
		ProviderID: consultantID,
		Date:       date,
		StartTime:  start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *checkConflict.Request, resp *checkConflict.Response) *ConflictResponse {
	out := &ConflictResponse{
		ConsultantID:  req.ProviderID.String(),
		Date:          req.Date.Format(domain.DateFormat),
		StartTime:     req.StartTime.String(),
		Conflict:      resp.Conflict,
		ConflictsWith: make([]Interval, 0, len(resp.ConflictsWith)),
	}

	for _, iv := range resp.ConflictsWith {
		start, errStart := types.NewTimeStringFromMinutes(iv.Start)
		end, errEnd := types.NewTimeStringFromMinutes(iv.End)
		if errStart != nil || errEnd != nil {
			continue
		}
		out.ConflictsWith = append(out.ConflictsWith, Interval{StartTime: start.String(), EndTime: end.String()})
	}

	return out
}
