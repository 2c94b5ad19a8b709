package navigate_wizard

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
)

type WizardService interface {
	Open(ctx context.Context, clientID uuid.UUID, notifier wizard.Notifier) (*wizard.Wizard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
