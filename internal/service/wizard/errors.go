package wizard

import "errors"

var (
	// ErrValidation возвращается, когда не выполнены условия перехода или выбора
	ErrValidation = errors.New("wizard: validation failed")

	// ErrNoNextStep возвращается при попытке перейти дальше шага подтверждения
	ErrNoNextStep = errors.New("wizard: already on the last step")

	// ErrProviderNotFound возвращается, когда консультант не найден
	ErrProviderNotFound = errors.New("wizard: provider not found")

	// ErrOfferingNotFound возвращается, когда тип сессии не найден
	ErrOfferingNotFound = errors.New("wizard: session type not found")

	// ErrSlotUnavailable возвращается, когда выбранный слот занят или отсутствует в сетке
	ErrSlotUnavailable = errors.New("wizard: slot is not available")

	// ErrSlotTaken возвращается, когда слот заняли между выбором и подтверждением
	ErrSlotTaken = errors.New("wizard: slot already taken")

	// ErrSubmitFailed возвращается при ошибке записи брони
	ErrSubmitFailed = errors.New("wizard: reservation write failed")

	// ErrPersistence возвращается, когда черновик не удалось сохранить
	ErrPersistence = errors.New("wizard: failed to persist draft")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("wizard: internal error")
)
