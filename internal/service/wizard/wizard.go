package wizard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SessionBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

var tracer = otel.Tracer("smc.session_booking.service.wizard")

// Wizard пошаговый мастер записи одного клиента:
// SelectProvider(1) -> SelectService(2) -> SelectDate(3) -> SelectTime(4) -> Confirm(5).
// Каждое изменение шага, консультанта, типа сессии, даты или слота сохраняется до возврата из метода.
type Wizard struct {
	svc      *Service
	clientID uuid.UUID
	notifier Notifier

	mu           sync.Mutex
	draft        *domain.BookingDraft
	slots        []domain.TimeSlot
	slotsFor     uuid.UUID
	usedFallback bool
	// generation растет при каждом выборе консультанта; результаты расчета
	// для устаревшего поколения отбрасываются
	generation uint64
}

// Draft возвращает копию текущего черновика
func (w *Wizard) Draft() domain.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.draft
}

// View возвращает состояние мастера вместе со слотами выбранной даты
func (w *Wizard) View(ctx context.Context) (*View, error) {
	if err := w.ensureSlots(ctx); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	view := &View{
		Draft:        *w.draft,
		Dates:        make([]string, 0),
		Slots:        make([]domain.TimeSlot, 0),
		UsedFallback: w.usedFallback,
	}

	seen := make(map[string]bool)
	for _, s := range w.slots {
		if s.IsAvailable && !seen[s.Date] {
			seen[s.Date] = true
			view.Dates = append(view.Dates, s.Date)
		}
		if w.draft.SelectedDate != "" && s.Date == w.draft.SelectedDate {
			view.Slots = append(view.Slots, s)
		}
	}

	return view, nil
}

// Next переходит на следующий шаг, если выполнены условия входа на него
func (w *Wizard) Next(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	step := w.draft.CurrentStep
	if step >= domain.StepConfirm {
		w.notifier.Error(MsgLastStep)
		return ErrNoNextStep
	}

	next := step + 1
	if !w.draft.CanEnter(next) {
		msg := guardMessage(next)
		w.notifier.Error(msg)
		return fmt.Errorf("%w: cannot enter step %s: %s", ErrValidation, next, msg)
	}

	w.draft.CurrentStep = next
	return w.persistLocked(ctx)
}

// Back возвращает на предыдущий шаг. На первом шаге ничего не делает.
func (w *Wizard) Back(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.CurrentStep <= domain.StepSelectProvider {
		return nil
	}

	w.draft.CurrentStep--
	return w.persistLocked(ctx)
}

// SelectProvider выбирает консультанта и пересчитывает доступность.
// Смена консультанта сбрасывает дату и слот.
func (w *Wizard) SelectProvider(ctx context.Context, provider domain.Provider) error {
	w.mu.Lock()
	changed := w.draft.SelectedProvider == nil || w.draft.SelectedProvider.ID != provider.ID
	w.draft.SelectedProvider = &provider
	if changed {
		w.draft.SelectedDate = ""
		w.draft.SelectedSlot = nil
		w.slots = nil
		w.usedFallback = false
	}
	w.generation++
	gen := w.generation
	err := w.persistLocked(ctx)
	w.mu.Unlock()

	if err != nil {
		return err
	}

	return w.refreshAvailability(ctx, provider.ID, gen)
}

// SelectService выбирает тип сессии. Формат, который тип не поддерживает, заменяется форматом по умолчанию.
func (w *Wizard) SelectService(ctx context.Context, offering domain.ServiceOffering) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft.SelectedService = &offering
	if !offering.SupportsMode(w.draft.SessionMode) {
		w.draft.SessionMode = offering.DefaultMode()
	}

	return w.persistLocked(ctx)
}

// SelectDate выбирает дату (YYYY-MM-DD) из сетки консультанта. Смена даты сбрасывает слот.
func (w *Wizard) SelectDate(ctx context.Context, date string) error {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		w.notifier.Error(MsgInvalidDate)
		return fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}

	if err := w.ensureSlots(ctx); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.SelectedProvider == nil {
		w.notifier.Error(MsgSelectProvider)
		return fmt.Errorf("%w: provider is not selected", ErrValidation)
	}

	if !hasDate(w.slots, date) {
		w.notifier.Error(MsgInvalidDate)
		return fmt.Errorf("%w: date %s is outside of the provider grid", ErrValidation, date)
	}

	if date != w.draft.SelectedDate {
		w.draft.SelectedSlot = nil
	}
	w.draft.SelectedDate = date

	return w.persistLocked(ctx)
}

// SelectSlot выбирает свободный слот на выбранную дату по времени начала (HH:MM)
func (w *Wizard) SelectSlot(ctx context.Context, startTime string) error {
	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		w.notifier.Error(MsgSlotUnavailable)
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := w.ensureSlots(ctx); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.SelectedDate == "" {
		w.notifier.Error(MsgSelectDate)
		return fmt.Errorf("%w: date is not selected", ErrValidation)
	}

	for _, s := range w.slots {
		if !s.Matches(w.draft.SelectedDate, start) {
			continue
		}
		if !s.IsAvailable {
			break
		}
		slot := s
		w.draft.SelectedSlot = &slot
		return w.persistLocked(ctx)
	}

	w.notifier.Error(MsgSlotUnavailable)
	return fmt.Errorf("%w: %s %s", ErrSlotUnavailable, w.draft.SelectedDate, start)
}

// SetMode выбирает формат проведения, поддерживаемый типом сессии
func (w *Wizard) SetMode(mode domain.SessionMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.SelectedService == nil {
		w.notifier.Error(MsgSelectService)
		return fmt.Errorf("%w: session type is not selected", ErrValidation)
	}
	if !w.draft.SelectedService.SupportsMode(mode) {
		w.notifier.Error(MsgModeUnsupported)
		return fmt.Errorf("%w: mode %q is not supported", ErrValidation, mode)
	}

	w.draft.SessionMode = mode
	return nil
}

// SetNotes задает заметку клиента к записи
func (w *Wizard) SetNotes(notes string) error {
	if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
		w.notifier.Error(MsgNotesTooLong)
		return fmt.Errorf("%w: notes exceed %d characters", ErrValidation, domain.MaxNotesLength)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Notes = notes
	return nil
}

// Submit создает запись со статусом pending и очищает черновик.
// При ошибке записи мастер остается на шаге подтверждения.
func (w *Wizard) Submit(ctx context.Context) (*SubmitResult, error) {
	ctx, span := tracer.Start(ctx, "WizardSubmit")
	defer span.End()

	w.mu.Lock()
	defer w.mu.Unlock()

	d := w.draft
	if d.CurrentStep != domain.StepConfirm || !d.CanEnter(domain.StepConfirm) {
		w.notifier.Error(MsgSubmitIncomplete)
		return nil, fmt.Errorf("%w: wizard is on step %s", ErrValidation, d.CurrentStep)
	}
	if !d.SelectedService.SupportsMode(d.SessionMode) {
		w.notifier.Error(MsgModeUnsupported)
		return nil, fmt.Errorf("%w: mode %q is not supported", ErrValidation, d.SessionMode)
	}

	date, err := time.Parse(domain.DateFormat, d.SelectedDate)
	if err != nil {
		w.notifier.Error(MsgInvalidDate)
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, d.SelectedDate)
	}

	var notes *string
	if trimmed := strings.TrimSpace(d.Notes); trimmed != "" {
		notes = &trimmed
	}

	// адрес оплаты проверяется до записи: после Create клиент обязан получить ссылку
	paymentBase, err := url.Parse(w.svc.cfg.PaymentURL)
	if err != nil {
		w.svc.logger.Error("Submit: invalid payment url %q: %v", w.svc.cfg.PaymentURL, err)
		w.notifier.Error(MsgSubmitFailed)
		return nil, fmt.Errorf("%w: payment url: %v", ErrInternal, err)
	}

	span.SetAttributes(
		attribute.String("booking.provider_id", d.SelectedProvider.ID.String()),
		attribute.String("booking.date", d.SelectedDate),
		attribute.String("booking.start_time", d.SelectedSlot.StartTime.String()),
	)

	created, err := w.svc.reservations.Create(ctx, &domain.Reservation{
		ProviderID:      d.SelectedProvider.ID,
		ClientID:        w.clientID,
		ServiceID:       d.SelectedService.ID,
		Date:            date,
		StartTime:       d.SelectedSlot.StartTime,
		EndTime:         d.SelectedSlot.EndTime,
		DurationMinutes: d.SelectedService.DurationMinutes,
		Mode:            d.SessionMode,
		Price:           d.SelectedService.Price,
		Notes:           notes,
		Status:          domain.StatusPending,
	})
	if err != nil {
		w.svc.metrics.ObserveReservation(false)
		span.RecordError(err)

		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			w.svc.logger.Warn("Submit: client=%s, slot %s %s already taken", w.clientID, d.SelectedDate, d.SelectedSlot.StartTime)
			w.notifier.Error(MsgSlotTaken)
			return nil, fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}

		w.svc.logger.Error("Submit: client=%s, failed to create reservation: %v", w.clientID, err)
		w.notifier.Error(submitErrorMessage(err))
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	w.svc.metrics.ObserveReservation(true)
	w.svc.logger.Info("Submit: client=%s, reservation=%s created for provider=%s at %s %s",
		w.clientID, created.ID, d.SelectedProvider.ID, d.SelectedDate, d.SelectedSlot.StartTime)

	if err := w.svc.store.Clear(ctx, w.clientID); err != nil {
		w.svc.logger.Error("Submit: client=%s, reservation=%s created but draft was not cleared: %v", w.clientID, created.ID, err)
	}
	w.draft = domain.NewBookingDraft()
	w.slots = nil
	w.usedFallback = false

	w.notifier.Success(MsgReservationCreated)

	return &SubmitResult{
		ReservationID: created.ID,
		PaymentURL:    buildPaymentURL(*paymentBase, created.ID),
	}, nil
}

// ensureSlots считает сетку, если консультант выбран, а сетки для него еще нет
func (w *Wizard) ensureSlots(ctx context.Context) error {
	w.mu.Lock()
	if w.draft.SelectedProvider == nil {
		w.mu.Unlock()
		return nil
	}
	providerID := w.draft.SelectedProvider.ID
	if w.slots != nil && w.slotsFor == providerID {
		w.mu.Unlock()
		return nil
	}
	gen := w.generation
	w.mu.Unlock()

	return w.refreshAvailability(ctx, providerID, gen)
}

// refreshAvailability считает сетку без блокировки мастера. Результат применяется,
// только если контекст не отменен и консультант за это время не сменился.
func (w *Wizard) refreshAvailability(ctx context.Context, providerID uuid.UUID, gen uint64) error {
	resp, err := w.svc.calculator.Execute(ctx, &get_available_slots.Request{ProviderID: providerID})

	w.mu.Lock()
	defer w.mu.Unlock()

	if ctxErr := ctx.Err(); ctxErr != nil {
		w.svc.logger.Warn("refreshAvailability: client=%s, provider=%s, discarding result: %v", w.clientID, providerID, ctxErr)
		return ctxErr
	}
	if gen != w.generation || w.draft.SelectedProvider == nil || w.draft.SelectedProvider.ID != providerID {
		w.svc.logger.Info("refreshAvailability: client=%s, provider=%s is no longer selected, discarding result", w.clientID, providerID)
		return nil
	}
	if err != nil {
		w.svc.logger.Error("refreshAvailability: client=%s, provider=%s: %v", w.clientID, providerID, err)
		return fmt.Errorf("%w: availability: %v", ErrInternal, err)
	}

	w.slots = resp.Slots
	w.slotsFor = providerID
	w.usedFallback = resp.UsedFallback
	if resp.UsedFallback {
		w.notifier.Warn(MsgFallbackSlots)
	}

	return nil
}

// persistLocked приводит шаг к допустимому и сохраняет черновик. Вызывается под w.mu.
func (w *Wizard) persistLocked(ctx context.Context) error {
	w.draft.CurrentStep = w.draft.ReachableStep()

	if err := w.svc.store.Save(ctx, w.clientID, w.draft); err != nil {
		w.svc.logger.Error("persist: client=%s: %v", w.clientID, err)
		w.notifier.Error(MsgDraftNotSaved)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}

func hasDate(slots []domain.TimeSlot, date string) bool {
	for _, s := range slots {
		if s.Date == date {
			return true
		}
	}
	return false
}

// submitErrorMessage выбирает самое точное сообщение: текст ошибки БД, затем детали, затем общее
func submitErrorMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if msg := strings.TrimSpace(pqErr.Message); msg != "" {
			return msg
		}
		if detail := strings.TrimSpace(pqErr.Detail); detail != "" {
			return detail
		}
	}
	return MsgSubmitFailed
}

func buildPaymentURL(u url.URL, reservationID uuid.UUID) string {
	q := u.Query()
	q.Set("reservation_id", reservationID.String())
	u.RawQuery = q.Encode()
	return u.String()
}
