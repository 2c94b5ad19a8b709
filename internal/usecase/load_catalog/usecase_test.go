package load_catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/logger"
	"github.com/m04kA/SMC-SessionBooking/pkg/notice"
)

type fakeOfferings struct {
	items []domain.ServiceOffering
	err   error
}

func (f *fakeOfferings) ListActive(context.Context) ([]domain.ServiceOffering, error) {
	return f.items, f.err
}

type fakeDirectory struct {
	mu          sync.Mutex
	providers   []domain.Provider
	listErr     error
	specialties map[uuid.UUID][]string
	failing     map[uuid.UUID]bool
	gotRole     string
}

func (f *fakeDirectory) ListByRole(_ context.Context, role string) ([]domain.Provider, error) {
	f.gotRole = role
	return f.providers, f.listErr
}

func (f *fakeDirectory) GetSpecialties(_ context.Context, id uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing[id] {
		return nil, errors.New("specialties endpoint timed out")
	}
	return f.specialties[id], nil
}

func TestExecute_AllSettledSpecialties(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	dir := &fakeDirectory{
		providers: []domain.Provider{{ID: a, FullName: "A"}, {ID: b, FullName: "B"}, {ID: c, FullName: "C"}},
		specialties: map[uuid.UUID][]string{
			a: {"kariyer"},
			c: {"aile", "stres"},
		},
		failing: map[uuid.UUID]bool{b: true},
	}
	offerings := &fakeOfferings{items: []domain.ServiceOffering{{ID: uuid.New(), Name: "Bireysel"}}}
	notices := notice.NewCollector()

	resp := NewUseCase(offerings, dir, "", 2, logger.NewNop()).Execute(context.Background(), notices)

	require.Len(t, resp.Providers, 3)
	assert.Equal(t, []string{"kariyer"}, resp.Providers[0].Specialties)
	assert.Equal(t, []string{}, resp.Providers[1].Specialties)
	assert.Equal(t, []string{"aile", "stres"}, resp.Providers[2].Specialties)
	assert.Len(t, resp.Offerings, 1)
	assert.Empty(t, notices.Notices())
	assert.Equal(t, domain.ProviderRole, dir.gotRole)
}

func TestExecute_SourceFailures(t *testing.T) {
	offerings := &fakeOfferings{err: errors.New("db down")}
	dir := &fakeDirectory{listErr: errors.New("user service down")}
	notices := notice.NewCollector()

	resp := NewUseCase(offerings, dir, "consultant", 4, logger.NewNop()).Execute(context.Background(), notices)

	assert.NotNil(t, resp.Offerings)
	assert.Empty(t, resp.Offerings)
	assert.NotNil(t, resp.Providers)
	assert.Empty(t, resp.Providers)

	messages := make([]string, 0)
	for _, n := range notices.Notices() {
		assert.Equal(t, notice.LevelWarning, n.Level)
		messages = append(messages, n.Message)
	}
	assert.ElementsMatch(t, []string{MsgOfferingsUnavailable, MsgProvidersUnavailable}, messages)
}
