package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// Поля черновика. Каждое хранится в отдельном ключе {prefix}:{clientID}:{field}.
const (
	fieldStep     = "step"
	fieldProvider = "provider"
	fieldService  = "service"
	fieldDate     = "date"
	fieldSlot     = "slot"
)

var fields = []string{fieldStep, fieldProvider, fieldService, fieldDate, fieldSlot}

// Store хранилище черновиков мастера записи в Redis.
// Формат и заметка выбираются только на шаге подтверждения и не сохраняются.
type Store struct {
	client  *redis.Client
	prefix  string
	logger  Logger
	metrics MetricsRecorder
	tracer  trace.Tracer
}

// New создает хранилище черновиков
func New(client *redis.Client, prefix string, logger Logger, metrics MetricsRecorder) *Store {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Store{
		client:  client,
		prefix:  prefix,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("smc.session_booking.draftstore"),
	}
}

func (s *Store) key(clientID uuid.UUID, field string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, clientID, field)
}

func (s *Store) keys(clientID uuid.UUID) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = s.key(clientID, f)
	}
	return keys
}

// Load читает черновик клиента. Отсутствующие ключи дают пустой черновик на первом шаге.
// Поврежденные значения пропускаются с предупреждением, согласованность шага
// восстанавливает вызывающая сторона.
func (s *Store) Load(ctx context.Context, clientID uuid.UUID) (*domain.BookingDraft, error) {
	ctx, span := s.start(ctx, "draftstore.Load", clientID)
	defer span.End()

	values, err := s.client.MGet(ctx, s.keys(clientID)...).Result()
	s.metrics.ObserveDraftOperation("load", err)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: client %s: %v", ErrLoadDraft, clientID, err)
	}

	draft := domain.NewBookingDraft()

	for i, raw := range values {
		str, ok := raw.(string)
		if !ok {
			continue
		}

		var decodeErr error
		switch fields[i] {
		case fieldStep:
			var step int
			step, decodeErr = strconv.Atoi(str)
			if decodeErr == nil {
				draft.CurrentStep = domain.Step(step)
			}
		case fieldProvider:
			var p domain.Provider
			if decodeErr = json.Unmarshal([]byte(str), &p); decodeErr == nil {
				draft.SelectedProvider = &p
			}
		case fieldService:
			var o domain.ServiceOffering
			if decodeErr = json.Unmarshal([]byte(str), &o); decodeErr == nil {
				draft.SelectedService = &o
			}
		case fieldDate:
			draft.SelectedDate = str
		case fieldSlot:
			var slot domain.TimeSlot
			if decodeErr = json.Unmarshal([]byte(str), &slot); decodeErr == nil {
				draft.SelectedSlot = &slot
			}
		}

		if decodeErr != nil {
			s.logger.Warn("Load: client=%s, skipping corrupt %s value: %v", clientID, fields[i], decodeErr)
		}
	}

	return draft, nil
}

// Save записывает все пять полей черновика одной транзакцией.
// Пустые поля удаляются, чтобы в хранилище не оставались устаревшие значения.
func (s *Store) Save(ctx context.Context, clientID uuid.UUID, draft *domain.BookingDraft) error {
	ctx, span := s.start(ctx, "draftstore.Save", clientID)
	defer span.End()

	values, err := encode(draft)
	if err != nil {
		s.metrics.ObserveDraftOperation("save", err)
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, f := range fields {
			key := s.key(clientID, f)
			if v, ok := values[f]; ok {
				pipe.Set(ctx, key, v, 0)
			} else {
				pipe.Del(ctx, key)
			}
		}
		return nil
	})
	s.metrics.ObserveDraftOperation("save", err)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: client %s: %v", ErrSaveDraft, clientID, err)
	}

	return nil
}

// Clear удаляет все ключи черновика в одной транзакции (MULTI/EXEC)
func (s *Store) Clear(ctx context.Context, clientID uuid.UUID) error {
	ctx, span := s.start(ctx, "draftstore.Clear", clientID)
	defer span.End()

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.keys(clientID)...)
		return nil
	})
	s.metrics.ObserveDraftOperation("clear", err)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: client %s: %v", ErrClearDraft, clientID, err)
	}

	return nil
}

func (s *Store) start(ctx context.Context, name string, clientID uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("booking.client_id", clientID.String())),
	)
}

func encode(draft *domain.BookingDraft) (map[string]string, error) {
	values := map[string]string{
		fieldStep: strconv.Itoa(int(draft.CurrentStep)),
	}

	if draft.SelectedProvider != nil {
		b, err := json.Marshal(draft.SelectedProvider)
		if err != nil {
			return nil, fmt.Errorf("%w: provider: %v", ErrEncode, err)
		}
		values[fieldProvider] = string(b)
	}
	if draft.SelectedService != nil {
		b, err := json.Marshal(draft.SelectedService)
		if err != nil {
			return nil, fmt.Errorf("%w: service: %v", ErrEncode, err)
		}
		values[fieldService] = string(b)
	}
	if draft.SelectedDate != "" {
		values[fieldDate] = draft.SelectedDate
	}
	if draft.SelectedSlot != nil {
		b, err := json.Marshal(draft.SelectedSlot)
		if err != nil {
			return nil, fmt.Errorf("%w: slot: %v", ErrEncode, err)
		}
		values[fieldSlot] = string(b)
	}

	return values, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveDraftOperation(string, error) {}
