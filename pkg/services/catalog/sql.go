package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/services/progress"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

const sqlCapabilitiesAPIVersion = "2021-11-01"

// SQLDatabaseImporter probes each region's SQL capability tree and flattens
// the supported service level objectives into per-region SKU lists.
type SQLDatabaseImporter struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
	concurrency    int
}

func NewSQLDatabaseImporter(caller armstore.Caller, artifacts artifact.Store, subscriptionID string, concurrency int) *SQLDatabaseImporter {
	return &SQLDatabaseImporter{
		caller:         caller,
		artifacts:      artifacts,
		subscriptionID: subscriptionID,
		concurrency:    concurrency,
	}
}

func (i *SQLDatabaseImporter) Import(ctx context.Context, regions []domain.Region) ([]domain.SQLRegionSkus, error) {
	logger := zerolog.Ctx(ctx)
	acc := newSQLRegionAccumulator()

	err := forEachRegion(ctx, regions, i.concurrency, func(ctx context.Context, step progress.Step[domain.Region]) error {
		region := step.Item

		capabilities, err := fetchSQLCapabilities(ctx, i.caller, i.subscriptionID, region.Code, "supportedEditions")
		if err != nil {
			logger.Warn().Err(err).
				Str("region", region.Code).
				Int("index", step.Index).
				Int("total", step.Total).
				Msg("failed to fetch sql database capabilities, skipping region")
			return nil
		}

		acc.Add(domain.SQLRegionSkus{
			Region:     region.DisplayName,
			RegionCode: region.Code,
			Skus:       flattenDatabaseSkus(capabilities),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	catalog := acc.Items(regions)
	if err := i.artifacts.SaveJSON(artifact.SQLDatabaseSkusFile, catalog); err != nil {
		return nil, err
	}

	logger.Info().Int("regions", len(catalog)).Msg("sql database sku catalog ready")
	return catalog, nil
}

// SQLManagedInstanceImporter is the managed-instance twin of the database
// importer: same sweep, different capability branch.
type SQLManagedInstanceImporter struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
	concurrency    int
}

func NewSQLManagedInstanceImporter(caller armstore.Caller, artifacts artifact.Store, subscriptionID string, concurrency int) *SQLManagedInstanceImporter {
	return &SQLManagedInstanceImporter{
		caller:         caller,
		artifacts:      artifacts,
		subscriptionID: subscriptionID,
		concurrency:    concurrency,
	}
}

func (i *SQLManagedInstanceImporter) Import(ctx context.Context, regions []domain.Region) ([]domain.SQLRegionSkus, error) {
	logger := zerolog.Ctx(ctx)
	acc := newSQLRegionAccumulator()

	err := forEachRegion(ctx, regions, i.concurrency, func(ctx context.Context, step progress.Step[domain.Region]) error {
		region := step.Item

		capabilities, err := fetchSQLCapabilities(ctx, i.caller, i.subscriptionID, region.Code, "supportedManagedInstanceVersions")
		if err != nil {
			logger.Warn().Err(err).
				Str("region", region.Code).
				Int("index", step.Index).
				Int("total", step.Total).
				Msg("failed to fetch managed instance capabilities, skipping region")
			return nil
		}

		acc.Add(domain.SQLRegionSkus{
			Region:     region.DisplayName,
			RegionCode: region.Code,
			Skus:       flattenInstanceSkus(capabilities),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	catalog := acc.Items(regions)
	if err := i.artifacts.SaveJSON(artifact.SQLManagedInstanceSkusFile, catalog); err != nil {
		return nil, err
	}

	logger.Info().Int("regions", len(catalog)).Msg("sql managed instance sku catalog ready")
	return catalog, nil
}

func fetchSQLCapabilities(ctx context.Context, caller armstore.Caller, subscriptionID, regionCode, include string) (*arm.SQLLocationCapabilities, error) {
	var capabilities arm.SQLLocationCapabilities
	path := fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Sql/locations/%s/capabilities", subscriptionID, regionCode)
	query := url.Values{"include": []string{include}}
	if err := caller.Get(ctx, path, sqlCapabilitiesAPIVersion, query, &capabilities); err != nil {
		return nil, err
	}
	return &capabilities, nil
}

// flattenDatabaseSkus walks version/edition/objective and deduplicates on the
// full four-attribute descriptor. An empty tree yields an empty slice, which
// still records that the region answered.
func flattenDatabaseSkus(capabilities *arm.SQLLocationCapabilities) []domain.SQLSku {
	skus := make([]domain.SQLSku, 0)
	seen := make(map[string]struct{})

	for _, version := range capabilities.SupportedServerVersions {
		for _, edition := range version.SupportedEditions {
			for _, slo := range edition.SupportedServiceLevelObjectives {
				sku := adapters.MapSQLServiceObjectiveToDomainSku(slo)
				key := sqlSkuKey(sku)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				skus = append(skus, sku)
			}
		}
	}

	return skus
}

func flattenInstanceSkus(capabilities *arm.SQLLocationCapabilities) []domain.SQLSku {
	skus := make([]domain.SQLSku, 0)
	seen := make(map[string]struct{})

	for _, version := range capabilities.SupportedManagedInstanceVersions {
		for _, edition := range version.SupportedEditions {
			for _, family := range edition.SupportedFamilies {
				for _, vcore := range family.SupportedVcoresValues {
					sku := adapters.MapSQLInstanceVcoreToDomainSku(edition, family, vcore)
					key := sqlSkuKey(sku)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					skus = append(skus, sku)
				}
			}
		}
	}

	return skus
}

func sqlSkuKey(sku domain.SQLSku) string {
	capacity := int32(-1)
	if sku.Capacity != nil {
		capacity = *sku.Capacity
	}
	return strings.ToLower(fmt.Sprintf("%s|%s|%s|%d", sku.Name, sku.Tier, sku.Family, capacity))
}

// sqlRegionAccumulator collects per-region results from the concurrent sweep
// and replays them in directory order.
type sqlRegionAccumulator struct {
	mu      sync.Mutex
	regions map[string]domain.SQLRegionSkus
}

func newSQLRegionAccumulator() *sqlRegionAccumulator {
	return &sqlRegionAccumulator{regions: make(map[string]domain.SQLRegionSkus)}
}

func (a *sqlRegionAccumulator) Add(entry domain.SQLRegionSkus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.regions[strings.ToLower(entry.RegionCode)] = entry
}

func (a *sqlRegionAccumulator) Items(order []domain.Region) []domain.SQLRegionSkus {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]domain.SQLRegionSkus, 0, len(a.regions))
	for _, region := range order {
		if entry, ok := a.regions[strings.ToLower(region.Code)]; ok {
			items = append(items, entry)
		}
	}
	return items
}
