package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	offeringRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/offering"
	"github.com/m04kA/SMC-SessionBooking/internal/integrations/userservice"
)

// Config параметры мастера записи
type Config struct {
	PaymentURL   string // Страница оплаты, к ней добавляется ?reservation_id=<id>
	ProviderRole string // Роль пользователя-консультанта в каталоге
}

// Service фабрика мастеров записи. Состояние мастера живет в хранилище черновиков,
// поэтому на каждый запрос клиента открывается новый Wizard.
type Service struct {
	store        DraftStore
	calculator   AvailabilityCalculator
	reservations ReservationRepository
	directory    ProviderDirectory
	offerings    OfferingRepository
	cfg          Config
	metrics      MetricsRecorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса мастера записи
func NewService(
	store DraftStore,
	calculator AvailabilityCalculator,
	reservations ReservationRepository,
	directory ProviderDirectory,
	offerings OfferingRepository,
	cfg Config,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if cfg.ProviderRole == "" {
		cfg.ProviderRole = domain.ProviderRole
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		store:        store,
		calculator:   calculator,
		reservations: reservations,
		directory:    directory,
		offerings:    offerings,
		cfg:          cfg,
		metrics:      metrics,
		logger:       logger,
	}
}

// Open восстанавливает мастер клиента из хранилища.
// Пустое хранилище дает первый шаг; несогласованный черновик опускается до наибольшего допустимого шага.
// Недоступность хранилища не фатальна: клиент начинает с чистого черновика и получает предупреждение.
func (s *Service) Open(ctx context.Context, clientID uuid.UUID, notifier Notifier) (*Wizard, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("%w: clientID is required", ErrValidation)
	}

	draft, err := s.store.Load(ctx, clientID)
	if err != nil {
		s.logger.Warn("Open: client=%s, draft unavailable, starting over: %v", clientID, err)
		notifier.Warn(MsgDraftUnavailable)
		draft = domain.NewBookingDraft()
	}

	w := &Wizard{
		svc:      s,
		clientID: clientID,
		notifier: notifier,
		draft:    draft,
	}

	if draft.SelectedSlot != nil && draft.SelectedSlot.Date != draft.SelectedDate {
		draft.SelectedSlot = nil
	}
	if draft.SelectedService != nil && !draft.SelectedService.SupportsMode(draft.SessionMode) {
		draft.SessionMode = draft.SelectedService.DefaultMode()
	}

	if reachable := draft.ReachableStep(); reachable != draft.CurrentStep {
		s.logger.Warn("Open: client=%s, stored step %d is inconsistent, resuming at %d", clientID, draft.CurrentStep, reachable)
		w.mu.Lock()
		err := w.persistLocked(ctx)
		w.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	return w, nil
}

// LookupProvider находит консультанта и его специализации.
// Недоступные специализации не мешают выбору консультанта.
func (s *Service) LookupProvider(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	provider, err := s.directory.GetProvider(ctx, id, s.cfg.ProviderRole)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			s.logger.Warn("LookupProvider: provider=%s not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("LookupProvider: failed to get provider=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	tags, err := s.directory.GetSpecialties(ctx, id)
	if err != nil {
		s.logger.Warn("LookupProvider: specialties for provider=%s unavailable: %v", id, err)
		tags = []string{}
	}
	provider.Specialties = tags

	return provider, nil
}

// LookupOffering находит активный тип сессии
func (s *Service) LookupOffering(ctx context.Context, id uuid.UUID) (*domain.ServiceOffering, error) {
	offering, err := s.offerings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offeringRepo.ErrOfferingNotFound) {
			s.logger.Warn("LookupOffering: session type=%s not found", id)
			return nil, ErrOfferingNotFound
		}
		s.logger.Error("LookupOffering: failed to get session type=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get session type: %v", ErrInternal, err)
	}

	return offering, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveReservation(bool) {}
