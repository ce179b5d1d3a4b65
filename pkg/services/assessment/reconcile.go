package assessment

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

// Resource types whose SKUs can be reconciled against a capability catalog.
const (
	typeVirtualMachines  = "microsoft.compute/virtualmachines"
	typeDisks            = "microsoft.compute/disks"
	typeStorageAccounts  = "microsoft.storage/storageaccounts"
	typeSQLDatabases     = "microsoft.sql/servers/databases"
	typeManagedInstances = "microsoft.sql/managedinstances"
)

// Catalogs bundles the reference data the reconciliation pass matches seeds
// against.
type Catalogs struct {
	VMSizes   []domain.VMSku
	Storage   []domain.StorageSku
	Databases []domain.SQLRegionSkus
	Instances []domain.SQLRegionSkus
}

var vmSizePattern = regexp.MustCompile(`vmSize=([\w.-]+)`)

// ReconcileSkus fills in the per-SKU verdicts on every available region of
// every summary. Resource types outside the reconcilable families keep their
// seeds untouched, with no verdict either way.
func ReconcileSkus(ctx context.Context, summaries []domain.ResourceSummary, catalogs Catalogs) []domain.ResourceSummary {
	logger := zerolog.Ctx(ctx)
	r := newReconciler(catalogs)

	for i := range summaries {
		summary := &summaries[i]

		var match func(regionDisplayName string, seed domain.ResourceSku) bool
		switch strings.ToLower(summary.ResourceType) {
		case typeVirtualMachines:
			match = func(region string, seed domain.ResourceSku) bool {
				return r.matchVirtualMachine(ctx, region, seed)
			}
		case typeDisks, typeStorageAccounts:
			match = r.matchStorage
		case typeSQLDatabases:
			match = r.matchDatabase
		case typeManagedInstances:
			match = r.matchInstance
		default:
			logger.Debug().Str("resource_type", summary.ResourceType).Msg("no sku catalog for resource type, leaving seeds unscored")
			continue
		}

		for ri := range summary.AllRegions {
			region := &summary.AllRegions[ri]
			if !region.Available || len(region.Skus) == 0 {
				continue
			}
			for si := range region.Skus {
				verdict := match(region.Region, region.Skus[si])
				region.Skus[si].Available = &verdict
			}
		}
	}

	logger.Info().Int("resource_types", len(summaries)).Msg("sku reconciliation finished")
	return summaries
}

type reconciler struct {
	vmRegions map[string]map[string]struct{}
	storage   map[string]struct{}
	databases map[string][]domain.SQLSku
	instances map[string][]domain.SQLSku
}

func newReconciler(catalogs Catalogs) *reconciler {
	r := &reconciler{
		vmRegions: make(map[string]map[string]struct{}, len(catalogs.VMSizes)),
		storage:   make(map[string]struct{}, len(catalogs.Storage)),
		databases: make(map[string][]domain.SQLSku, len(catalogs.Databases)),
		instances: make(map[string][]domain.SQLSku, len(catalogs.Instances)),
	}

	for _, sku := range catalogs.VMSizes {
		regions := make(map[string]struct{}, len(sku.Regions))
		for _, region := range sku.Regions {
			regions[strings.ToLower(region)] = struct{}{}
		}
		r.vmRegions[sku.Name] = regions
	}

	for _, sku := range catalogs.Storage {
		r.storage[storageKey(sku.Location, sku.Name, sku.Tier)] = struct{}{}
	}

	for _, entry := range catalogs.Databases {
		r.databases[strings.ToLower(entry.Region)] = entry.Skus
	}

	// Managed instance lookups accept the display name or the region code.
	for _, entry := range catalogs.Instances {
		r.instances[strings.ToLower(entry.Region)] = entry.Skus
		r.instances[strings.ToLower(entry.RegionCode)] = entry.Skus
	}

	return r
}

// matchVirtualMachine keys off the vmSize token in the seed's rendered form.
// A seed without the token cannot be matched and scores unavailable.
func (r *reconciler) matchVirtualMachine(ctx context.Context, regionDisplayName string, seed domain.ResourceSku) bool {
	groups := vmSizePattern.FindStringSubmatch(seed.String())
	if len(groups) < 2 {
		zerolog.Ctx(ctx).Warn().
			Str("sku", seed.String()).
			Str("region", regionDisplayName).
			Msg("seed carries no vm size, marking unavailable")
		return false
	}

	regions, ok := r.vmRegions[groups[1]]
	if !ok {
		return false
	}
	_, ok = regions[strings.ToLower(regionDisplayName)]
	return ok
}

func (r *reconciler) matchStorage(regionDisplayName string, seed domain.ResourceSku) bool {
	_, ok := r.storage[storageKey(regionDisplayName, seed.Name, seed.Tier)]
	return ok
}

func (r *reconciler) matchDatabase(regionDisplayName string, seed domain.ResourceSku) bool {
	for _, sku := range r.databases[strings.ToLower(regionDisplayName)] {
		if sku.Name != seed.Name || sku.Tier != seed.Tier {
			continue
		}
		if !capacityEqual(sku.Capacity, seed.Capacity) {
			continue
		}
		// Family only disqualifies when both sides state one.
		if sku.Family != "" && seed.Family != "" && !strings.EqualFold(sku.Family, seed.Family) {
			continue
		}
		return true
	}
	return false
}

// matchInstance ignores capacity: instances resize within a family, so the
// placement question ends at name, tier and family. Unlike databases, family
// is always compared; every instance edition catalogs one.
func (r *reconciler) matchInstance(regionDisplayName string, seed domain.ResourceSku) bool {
	for _, sku := range r.instances[strings.ToLower(regionDisplayName)] {
		if !strings.EqualFold(sku.Name, seed.Name) {
			continue
		}
		if !strings.EqualFold(sku.Tier, seed.Tier) {
			continue
		}
		if !strings.EqualFold(sku.Family, seed.Family) {
			continue
		}
		return true
	}
	return false
}

func storageKey(location, name, tier string) string {
	return strings.ToLower(location) + "|" + name + "|" + tier
}

func capacityEqual(a, b *int32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
