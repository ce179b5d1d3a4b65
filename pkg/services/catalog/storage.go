package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

const storageSkusAPIVersion = "2023-01-01"

// StorageSkuImporter reshapes the subscription-wide storage SKU listing into
// one record per SKU and region. The wire listing names regions by code; the
// catalog stores display names so it lines up with the other artifacts.
type StorageSkuImporter struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
}

func NewStorageSkuImporter(caller armstore.Caller, artifacts artifact.Store, subscriptionID string) *StorageSkuImporter {
	return &StorageSkuImporter{caller: caller, artifacts: artifacts, subscriptionID: subscriptionID}
}

// Import reshapes the listing into per-region records. A failed listing is
// logged and yields an empty catalog; storage SKUs then score unavailable
// everywhere, but the run still produces its artifact.
func (i *StorageSkuImporter) Import(ctx context.Context, regions []domain.Region) ([]domain.StorageSku, error) {
	logger := zerolog.Ctx(ctx)

	var list arm.StorageSkuList
	path := fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Storage/skus", i.subscriptionID)
	if err := i.caller.Get(ctx, path, storageSkusAPIVersion, nil, &list); err != nil {
		logger.Warn().Err(err).Msg("failed to list storage skus, continuing with an empty catalog")
	}

	seen := make(map[string]struct{})
	skus := make([]domain.StorageSku, 0, len(list.Value))
	for _, region := range regions {
		for _, sku := range list.Value {
			if !skuListedInRegion(sku, region.Code) {
				continue
			}
			key := strings.ToLower(sku.Name + "|" + region.Code)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			skus = append(skus, adapters.MapArmStorageSkuToDomainSku(sku, region.DisplayName))
		}
	}

	if err := i.artifacts.SaveJSON(artifact.StorageSkusFile, skus); err != nil {
		return nil, err
	}

	logger.Info().Int("skus", len(skus)).Msg("storage sku catalog ready")
	return skus, nil
}

func skuListedInRegion(sku arm.StorageSku, regionCode string) bool {
	for _, location := range sku.Locations {
		if strings.EqualFold(location, regionCode) {
			return true
		}
	}
	return false
}
