package catalog

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/services/progress"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

const vmSizesAPIVersion = "2023-07-01"

// VMSizeImporter sweeps the per-region VM size listings into one catalog
// keyed by size name, accumulating the regions each size shows up in.
type VMSizeImporter struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
	concurrency    int
}

func NewVMSizeImporter(caller armstore.Caller, artifacts artifact.Store, subscriptionID string, concurrency int) *VMSizeImporter {
	return &VMSizeImporter{
		caller:         caller,
		artifacts:      artifacts,
		subscriptionID: subscriptionID,
		concurrency:    concurrency,
	}
}

// Import fetches sizes for every region. A region that fails to answer is
// logged and skipped; its sizes simply never join the accumulated regions.
func (i *VMSizeImporter) Import(ctx context.Context, regions []domain.Region) ([]domain.VMSku, error) {
	logger := zerolog.Ctx(ctx)
	acc := newVMSkuAccumulator()

	err := forEachRegion(ctx, regions, i.concurrency, func(ctx context.Context, step progress.Step[domain.Region]) error {
		region := step.Item

		var list arm.VMSizeList
		path := fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Compute/locations/%s/vmSizes", i.subscriptionID, region.Code)
		if err := i.caller.Get(ctx, path, vmSizesAPIVersion, nil, &list); err != nil {
			logger.Warn().Err(err).
				Str("region", region.Code).
				Int("index", step.Index).
				Int("total", step.Total).
				Msg("failed to list vm sizes, skipping region")
			return nil
		}

		acc.Add(region.DisplayName, list.Value)
		logger.Debug().
			Str("region", region.Code).
			Int("index", step.Index).
			Int("total", step.Total).
			Int("sizes", len(list.Value)).
			Msg("vm sizes collected")
		return nil
	})
	if err != nil {
		return nil, err
	}

	skus := acc.Items()
	if err := i.artifacts.SaveJSON(artifact.VMSkusFile, skus); err != nil {
		return nil, err
	}

	logger.Info().Int("sizes", len(skus)).Msg("vm size catalog ready")
	return skus, nil
}

// vmSkuAccumulator merges per-region size listings. Adding the same region
// to a size twice is a no-op, so retried or overlapping sweeps stay clean.
type vmSkuAccumulator struct {
	mu   sync.Mutex
	skus map[string]*domain.VMSku
}

func newVMSkuAccumulator() *vmSkuAccumulator {
	return &vmSkuAccumulator{skus: make(map[string]*domain.VMSku)}
}

func (a *vmSkuAccumulator) Add(regionDisplayName string, sizes []arm.VMSize) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, size := range sizes {
		sku, ok := a.skus[size.Name]
		if !ok {
			mapped := adapters.MapArmVMSizeToDomainSku(size)
			sku = &mapped
			a.skus[size.Name] = sku
		}
		if !slices.Contains(sku.Regions, regionDisplayName) {
			sku.Regions = append(sku.Regions, regionDisplayName)
		}
	}
}

// Items returns the catalog sorted by size name, each with its region list
// sorted, so the persisted artifact is stable across runs.
func (a *vmSkuAccumulator) Items() []domain.VMSku {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, 0, len(a.skus))
	for name := range a.skus {
		names = append(names, name)
	}
	sort.Strings(names)

	skus := make([]domain.VMSku, 0, len(names))
	for _, name := range names {
		sku := a.skus[name]
		sort.Strings(sku.Regions)
		skus = append(skus, *sku)
	}
	return skus
}
