// Package wizardtest собирает мастер записи на фейковых зависимостях для тестов обработчиков.
package wizardtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	offeringRepo "github.com/m04kA/SMC-SessionBooking/internal/infra/storage/offering"
	"github.com/m04kA/SMC-SessionBooking/internal/integrations/userservice"
	"github.com/m04kA/SMC-SessionBooking/internal/service/wizard"
	"github.com/m04kA/SMC-SessionBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
)

// PaymentURL страница оплаты тестового сервиса
const PaymentURL = "https://pay.example.com/checkout"

var (
	// Today "сегодня" тестовой сетки: понедельник
	Today = time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)

	ClientID      = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	ReservationID = uuid.MustParse("55555555-5555-4555-8555-555555555555")

	Provider = domain.Provider{
		ID:       uuid.MustParse("11111111-1111-4111-8111-111111111111"),
		FullName: "Ayşe Yılmaz",
	}
	Offering = domain.ServiceOffering{
		ID:              uuid.MustParse("22222222-2222-4222-8222-222222222222"),
		Name:            "60 dakikalık danışmanlık",
		DurationMinutes: 60,
		Price:           500,
		IsOnline:        true,
		IsInPerson:      true,
	}
)

// Env сервис мастера и его фейковые зависимости
type Env struct {
	Service      *wizard.Service
	Store        *MemStore
	Reservations *Reservations
}

// NewEnv собирает сервис с реальным калькулятором слотов на дату Today.
// booked занимают слоты в сетке.
func NewEnv(t testing.TB, booked ...*domain.Reservation) *Env {
	t.Helper()

	grid := get_available_slots.DefaultGridConfig()
	grid.Location = time.UTC
	calc := get_available_slots.NewUseCase(noExceptions{}, staticReservations(booked), grid, nil, logger.NewNop()).
		WithTimeProvider(fixedTime{})

	store := NewMemStore()
	res := &Reservations{}
	svc := wizard.NewService(store, calc, res, directory{}, offerings{}, wizard.Config{
		PaymentURL: PaymentURL,
	}, nil, logger.NewNop())

	return &Env{Service: svc, Store: store, Reservations: res}
}

// Seed кладет черновик клиента в хранилище
func (e *Env) Seed(clientID uuid.UUID, draft domain.BookingDraft) {
	e.Store.mu.Lock()
	defer e.Store.mu.Unlock()
	e.Store.drafts[clientID] = draft
}

// ConfirmDraft черновик на шаге подтверждения: Provider, Offering, 2025-06-03 09:30
func ConfirmDraft() domain.BookingDraft {
	p, o := Provider, Offering
	return domain.BookingDraft{
		CurrentStep:      domain.StepConfirm,
		SelectedProvider: &p,
		SelectedService:  &o,
		SelectedDate:     "2025-06-03",
		SelectedSlot: &domain.TimeSlot{
			Date:        "2025-06-03",
			StartTime:   "09:30",
			EndTime:     "10:30",
			IsAvailable: true,
		},
		SessionMode: domain.ModeOnline,
	}
}

// MemStore хранилище черновиков в памяти
type MemStore struct {
	mu      sync.Mutex
	drafts  map[uuid.UUID]domain.BookingDraft
	SaveErr error
	LoadErr error
}

func NewMemStore() *MemStore {
	return &MemStore{drafts: make(map[uuid.UUID]domain.BookingDraft)}
}

func (s *MemStore) Load(_ context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	d, ok := s.drafts[id]
	if !ok {
		return domain.NewBookingDraft(), nil
	}
	return &d, nil
}

func (s *MemStore) Save(_ context.Context, id uuid.UUID, d *domain.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.drafts[id] = *d
	return nil
}

func (s *MemStore) Clear(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// Stored возвращает сохраненный черновик клиента
func (s *MemStore) Stored(id uuid.UUID) (domain.BookingDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	return d, ok
}

// Reservations фейковый репозиторий записей, выдает ReservationID
type Reservations struct {
	mu      sync.Mutex
	Created []*domain.Reservation
	Err     error
}

func (r *Reservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	res.ID = ReservationID
	res.CreatedAt = Today
	r.Created = append(r.Created, res)
	return res, nil
}

type directory struct{}

func (directory) GetProvider(_ context.Context, id uuid.UUID, _ string) (*domain.Provider, error) {
	if id != Provider.ID {
		return nil, userservice.ErrUserNotFound
	}
	p := Provider
	return &p, nil
}

func (directory) GetSpecialties(context.Context, uuid.UUID) ([]string, error) {
	return []string{"kariyer"}, nil
}

type offerings struct{}

func (offerings) GetByID(_ context.Context, id uuid.UUID) (*domain.ServiceOffering, error) {
	if id != Offering.ID {
		return nil, offeringRepo.ErrOfferingNotFound
	}
	o := Offering
	return &o, nil
}

type noExceptions struct{}

func (noExceptions) ListByProviderAndRange(context.Context, uuid.UUID, time.Time, time.Time) ([]domain.AvailabilityException, error) {
	return nil, nil
}

type staticReservations []*domain.Reservation

func (s staticReservations) ListByFilter(context.Context, domain.ReservationFilter) ([]*domain.Reservation, error) {
	return s, nil
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return Today }
