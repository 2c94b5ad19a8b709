package check_conflict

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (int, error) {
	if req.ProviderID == uuid.Nil {
		return 0, fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err := req.StartTime.Minutes()
	if err != nil {
		return 0, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	return start, nil
}
