package load_catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// UseCase загрузка типов сессий и консультантов.
// Ошибки источников не возвращаются: пользователь получает пустой список и предупреждение.
type UseCase struct {
	offeringRepo OfferingRepository
	directory    ProviderDirectory
	providerRole string
	concurrency  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	offeringRepo OfferingRepository,
	directory ProviderDirectory,
	providerRole string,
	concurrency int,
	logger Logger,
) *UseCase {
	if providerRole == "" {
		providerRole = domain.ProviderRole
	}
	return &UseCase{
		offeringRepo: offeringRepo,
		directory:    directory,
		providerRole: providerRole,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Execute загружает оба списка параллельно
func (uc *UseCase) Execute(ctx context.Context, notifier Notifier) *Response {
	resp := &Response{
		Offerings: []domain.ServiceOffering{},
		Providers: []domain.Provider{},
	}

	var g errgroup.Group

	g.Go(func() error {
		offerings, err := uc.offeringRepo.ListActive(ctx)
		if err != nil {
			uc.logger.Error("LoadCatalog: failed to load offerings: %v", err)
			notifier.Warn(MsgOfferingsUnavailable)
			return nil
		}
		resp.Offerings = offerings
		return nil
	})

	g.Go(func() error {
		providers, err := uc.loadProviders(ctx)
		if err != nil {
			uc.logger.Error("LoadCatalog: failed to load providers: %v", err)
			notifier.Warn(MsgProvidersUnavailable)
			return nil
		}
		resp.Providers = providers
		return nil
	})

	_ = g.Wait()

	uc.logger.Info("LoadCatalog: loaded %d offerings and %d providers", len(resp.Offerings), len(resp.Providers))
	return resp
}

// loadProviders получает консультантов и их специализации.
// Специализации запрашиваются параллельно, ошибка по одному консультанту дает пустой список только для него.
func (uc *UseCase) loadProviders(ctx context.Context) ([]domain.Provider, error) {
	providers, err := uc.directory.ListByRole(ctx, uc.providerRole)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if uc.concurrency > 0 {
		g.SetLimit(uc.concurrency)
	}

	for i := range providers {
		i := i
		g.Go(func() error {
			tags, err := uc.directory.GetSpecialties(gctx, providers[i].ID)
			if err != nil {
				uc.logger.Warn("LoadCatalog: specialties for provider=%s unavailable: %v", providers[i].ID, err)
				tags = []string{}
			}
			providers[i].Specialties = tags
			return nil
		})
	}

	_ = g.Wait()

	return providers, nil
}
