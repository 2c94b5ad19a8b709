package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == uuid.Nil {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must not exceed %d", ErrInvalidInput, domain.MaxHorizonDays)
	}

	return nil
}
