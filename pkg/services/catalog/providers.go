package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

const providersAPIVersion = "2021-04-01"

// ProvidersImporter captures which resource types each provider namespace
// can place where. Locations in the result are region display names.
type ProvidersImporter struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
}

func NewProvidersImporter(caller armstore.Caller, artifacts artifact.Store, subscriptionID string) *ProvidersImporter {
	return &ProvidersImporter{caller: caller, artifacts: artifacts, subscriptionID: subscriptionID}
}

func (i *ProvidersImporter) Import(ctx context.Context) ([]domain.ProviderEntry, error) {
	logger := zerolog.Ctx(ctx)

	var list arm.ProviderList
	path := fmt.Sprintf("/subscriptions/%s/providers", i.subscriptionID)
	if err := i.caller.Get(ctx, path, providersAPIVersion, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list resource providers: %w", err)
	}

	entries := make([]domain.ProviderEntry, 0, len(list.Value))
	for _, provider := range list.Value {
		entries = append(entries, adapters.MapArmProviderToDomainEntry(provider))
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Namespace < entries[b].Namespace
	})

	if err := i.artifacts.SaveJSON(artifact.ProvidersFile, entries); err != nil {
		return nil, err
	}

	logger.Info().Int("providers", len(entries)).Msg("provider catalog ready")
	return entries, nil
}
