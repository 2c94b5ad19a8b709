package get_available_slots

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

var tracer = otel.Tracer("smc.session_booking.usecase.get_available_slots")

// Источники занятости для метрик
const (
	sourceExceptions   = "exceptions"
	sourceReservations = "reservations"
)

// UseCase расчет сетки слотов консультанта.
// Основная сетка накрывается двумя независимыми источниками занятости;
// ошибка любого источника не отменяет другой.
type UseCase struct {
	exceptionRepo   ExceptionRepository
	reservationRepo ReservationRepository
	grid            GridConfig
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	exceptionRepo ExceptionRepository,
	reservationRepo ReservationRepository,
	grid GridConfig,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if grid.Location == nil {
		grid.Location = time.Local
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		exceptionRepo:   exceptionRepo,
		reservationRepo: reservationRepo,
		grid:            grid,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает полную сетку слотов (свободные и занятые) на горизонт от сегодняшнего дня.
// Ошибку возвращает только при некорректном запросе или отмененном контексте.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracer.Start(ctx, "GetAvailableSlots")
	defer span.End()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		span.RecordError(err)
		return nil, err
	}

	horizon := req.HorizonDays
	if horizon <= 0 {
		horizon = uc.grid.HorizonDays
	}

	today := startOfDay(uc.timeProvider.Now(), uc.grid.Location)
	span.SetAttributes(
		attribute.String("booking.provider_id", req.ProviderID.String()),
		attribute.Int("booking.horizon_days", horizon),
		attribute.String("booking.today", today.Format(domain.DateFormat)),
	)

	// 1. Основная сетка
	slots, err := generateGrid(today, horizon, uc.grid.SlotTemplate, uc.grid.SlotDurationMinutes, true)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: provider=%s, grid generation failed, using fallback: %v", req.ProviderID, err)
		span.RecordError(err)
		return uc.fallback(today), nil
	}

	// 2. Исключения доступности
	exceptions, err := uc.exceptionRepo.ListByProviderAndRange(ctx, req.ProviderID, today, today.AddDate(0, 0, horizon))
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: provider=%s, skipping exceptions: %v", req.ProviderID, err)
		uc.metrics.ObserveAvailabilitySourceFailure(sourceExceptions)
		span.RecordError(err)
	} else {
		marked := applyExceptions(slots, exceptions)
		span.SetAttributes(attribute.Int("booking.exceptions_marked", marked))
	}

	// 3. Активные записи
	reservations, err := uc.reservationRepo.ListByFilter(ctx, domain.ReservationFilter{
		ProviderID: req.ProviderID,
		FromDate:   &today,
		Statuses:   domain.BlockingStatuses,
	})
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: provider=%s, skipping reservations: %v", req.ProviderID, err)
		uc.metrics.ObserveAvailabilitySourceFailure(sourceReservations)
		span.RecordError(err)
	} else {
		marked := applyReservations(slots, reservations)
		span.SetAttributes(attribute.Int("booking.reservations_marked", marked))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.metrics.ObserveAvailability(false)
	uc.logger.Info("GetAvailableSlots: provider=%s, generated %d slots from %s for %d days",
		req.ProviderID, len(slots), today.Format(domain.DateFormat), horizon)

	return &Response{Slots: slots}, nil
}

// fallback сокращенная сетка без учета занятости, все слоты свободны
func (uc *UseCase) fallback(today time.Time) *Response {
	uc.metrics.ObserveAvailability(true)

	slots, err := generateGrid(today, uc.grid.FallbackHorizonDays, uc.grid.FallbackSlotTemplate, uc.grid.FallbackDurationMinutes, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: configured fallback grid is invalid, using built-in one: %v", err)
		slots, _ = generateGrid(today, domain.FallbackHorizonDays, templateStrings(domain.FallbackSlotTemplate), domain.FallbackSlotDurationMins, false)
	}

	return &Response{Slots: slots, UsedFallback: true}
}

type noopMetrics struct{}

func (noopMetrics) ObserveAvailability(bool)                {}
func (noopMetrics) ObserveAvailabilitySourceFailure(string) {}
