package domain

// Step шаг мастера записи
type Step int

const (
	StepSelectProvider Step = 1
	StepSelectService  Step = 2
	StepSelectDate     Step = 3
	StepSelectTime     Step = 4
	StepConfirm        Step = 5
)

// IsValid проверяет, что шаг в диапазоне 1..5
func (s Step) IsValid() bool {
	return s >= StepSelectProvider && s <= StepConfirm
}

func (s Step) String() string {
	switch s {
	case StepSelectProvider:
		return "select_provider"
	case StepSelectService:
		return "select_service"
	case StepSelectDate:
		return "select_date"
	case StepSelectTime:
		return "select_time"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// BookingDraft незавершенный выбор клиента в мастере записи.
// Инвариант: CurrentStep >= 2 => SelectedProvider != nil, CurrentStep >= 3 => SelectedService != nil.
type BookingDraft struct {
	CurrentStep      Step             `json:"currentStep"`
	SelectedProvider *Provider        `json:"selectedProvider"`
	SelectedService  *ServiceOffering `json:"selectedService"`
	SelectedDate     string           `json:"selectedDate"`
	SelectedSlot     *TimeSlot        `json:"selectedSlot"`
	SessionMode      SessionMode      `json:"sessionMode"`
	Notes            string           `json:"notes"`
}

// NewBookingDraft создает пустой черновик на первом шаге
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		CurrentStep: StepSelectProvider,
		SessionMode: ModeOnline,
	}
}

// CanEnter проверяет, выполнены ли условия входа на шаг
func (d *BookingDraft) CanEnter(step Step) bool {
	switch step {
	case StepSelectProvider:
		return true
	case StepSelectService:
		return d.SelectedProvider != nil
	case StepSelectDate:
		return d.SelectedProvider != nil && d.SelectedService != nil
	case StepSelectTime:
		return d.CanEnter(StepSelectDate) && d.SelectedDate != ""
	case StepConfirm:
		return d.CanEnter(StepSelectTime) && d.SelectedSlot != nil
	default:
		return false
	}
}

// ReachableStep возвращает наибольший шаг не выше текущего, условия которого выполнены.
// Используется для восстановления согласованного состояния после загрузки из хранилища.
func (d *BookingDraft) ReachableStep() Step {
	step := d.CurrentStep
	if !step.IsValid() {
		step = StepSelectProvider
	}
	for step > StepSelectProvider && !d.CanEnter(step) {
		step--
	}
	return step
}

// IsEmpty возвращает true, если клиент еще ничего не выбрал
func (d BookingDraft) IsEmpty() bool {
	return d.CurrentStep == StepSelectProvider &&
		d.SelectedProvider == nil &&
		d.SelectedService == nil &&
		d.SelectedDate == "" &&
		d.SelectedSlot == nil
}
