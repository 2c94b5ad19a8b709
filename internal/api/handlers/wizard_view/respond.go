package wizard_view

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SessionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

const msgWizardFailed = "İşlem tamamlanamadı"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Respond отдает текущее состояние мастера вместе с уведомлениями запроса
func Respond(ctx context.Context, w http.ResponseWriter, wiz *wizard.Wizard, notices *notice.Collector, route string, logger Logger) {
	view, err := wiz.View(ctx)
	if err != nil {
		RespondError(w, err, notices, route, logger)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromView(view, notices.Notices()))
}

// RespondError переводит ошибку мастера в HTTP статус.
// Текст ошибки берется из последнего уведомления об ошибке, если оно есть.
func RespondError(w http.ResponseWriter, err error, notices *notice.Collector, route string, logger Logger) {
	var status int
	fallback := msgWizardFailed
	switch {
	case errors.Is(err, wizard.ErrValidation), errors.Is(err, wizard.ErrNoNextStep):
		logger.Warn("%s - Validation failed: %v", route, err)
		status = http.StatusBadRequest

	case errors.Is(err, wizard.ErrProviderNotFound):
		logger.Warn("%s - Consultant not found: %v", route, err)
		status = http.StatusNotFound
		fallback = wizard.MsgProviderNotFound

	case errors.Is(err, wizard.ErrOfferingNotFound):
		logger.Warn("%s - Session type not found: %v", route, err)
		status = http.StatusNotFound
		fallback = wizard.MsgOfferingNotFound

	case errors.Is(err, wizard.ErrSlotUnavailable), errors.Is(err, wizard.ErrSlotTaken):
		logger.Warn("%s - Slot conflict: %v", route, err)
		status = http.StatusConflict

	case errors.Is(err, wizard.ErrPersistence):
		logger.Error("%s - Draft store unavailable: %v", route, err)
		status = http.StatusServiceUnavailable

	case errors.Is(err, wizard.ErrSubmitFailed):
		logger.Error("%s - Reservation write failed: %v", route, err)
		status = http.StatusBadGateway

	default:
		logger.Error("%s - Wizard error: %v", route, err)
		handlers.RespondInternalError(w)
		return
	}

	all := notices.Notices()
	handlers.RespondErrorWithNotices(w, status, lastError(all, fallback), all)
}

func lastError(notices []notice.Notice, fallback string) string {
	for i := len(notices) - 1; i >= 0; i-- {
		if notices[i].Level == notice.LevelError {
			return notices[i].Message
		}
	}
	return fallback
}
