package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func seededSummary(resourceType string, skus []domain.ResourceSku, regions ...string) domain.ResourceSummary {
	summary := domain.ResourceSummary{
		ResourceType:    resourceType,
		ImplementedSkus: skus,
	}
	for _, region := range regions {
		entry := domain.RegionAvailability{Region: region, Available: true}
		entry.Skus = append(entry.Skus, skus...)
		summary.AllRegions = append(summary.AllRegions, entry)
	}
	return summary
}

func verdicts(region domain.RegionAvailability) []bool {
	out := make([]bool, 0, len(region.Skus))
	for _, sku := range region.Skus {
		if sku.Available == nil {
			continue
		}
		out = append(out, *sku.Available)
	}
	return out
}

func TestReconcileSkus_Storage(t *testing.T) {
	catalogs := Catalogs{Storage: []domain.StorageSku{
		{Name: "Standard_LRS", Tier: "Standard", Location: "East US"},
	}}

	t.Run("disks and storage accounts share the matcher", func(t *testing.T) {
		for _, resourceType := range []string{"microsoft.storage/storageaccounts", "Microsoft.Compute/disks"} {
			summaries := []domain.ResourceSummary{seededSummary(
				resourceType,
				[]domain.ResourceSku{{Name: "Standard_LRS", Tier: "Standard"}},
				"East US", "West US",
			)}

			reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

			require.Len(t, reconciled, 1)
			assert.Equal(t, []bool{true}, verdicts(reconciled[0].AllRegions[0]), resourceType)
			assert.Equal(t, []bool{false}, verdicts(reconciled[0].AllRegions[1]), resourceType)
		}
	})

	t.Run("tier mismatch is a miss", func(t *testing.T) {
		summaries := []domain.ResourceSummary{seededSummary(
			"microsoft.storage/storageaccounts",
			[]domain.ResourceSku{{Name: "Standard_LRS", Tier: "Premium"}},
			"East US",
		)}

		reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

		assert.Equal(t, []bool{false}, verdicts(reconciled[0].AllRegions[0]))
	})
}

func TestReconcileSkus_VirtualMachines(t *testing.T) {
	catalogs := Catalogs{VMSizes: []domain.VMSku{
		{Name: "Standard_D2s_v3", Regions: []string{"East US"}},
	}}

	summaries := []domain.ResourceSummary{seededSummary(
		"microsoft.compute/virtualmachines",
		[]domain.ResourceSku{{VMSize: "Standard_D2s_v3"}, {Name: "sizeless"}},
		"East US", "West US",
	)}

	reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

	eastUS := reconciled[0].AllRegions[0]
	assert.Equal(t, []bool{true, false}, verdicts(eastUS),
		"the size places in East US; a seed without a vmSize token scores unavailable")
	assert.Equal(t, []bool{false, false}, verdicts(reconciled[0].AllRegions[1]))
}

func TestReconcileSkus_ManagedInstances(t *testing.T) {
	four, eight := int32(4), int32(8)
	catalogs := Catalogs{Instances: []domain.SQLRegionSkus{{
		Region:     "East US",
		RegionCode: "eastus",
		Skus:       []domain.SQLSku{{Name: "GP_Gen5", Tier: "GeneralPurpose", Family: "Gen5", Capacity: &four}},
	}}}

	t.Run("capacity never gates placement", func(t *testing.T) {
		summaries := []domain.ResourceSummary{seededSummary(
			"microsoft.sql/managedinstances",
			[]domain.ResourceSku{
				{Name: "GP_Gen5", Tier: "GeneralPurpose", Family: "Gen5", Capacity: &four},
				{Name: "GP_Gen5", Tier: "GeneralPurpose", Family: "Gen5", Capacity: &eight},
			},
			"East US",
		)}

		reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

		assert.Equal(t, []bool{true, true}, verdicts(reconciled[0].AllRegions[0]),
			"instances resize within a family, so differing capacities both place")
	})

	t.Run("family mismatch is a miss", func(t *testing.T) {
		summaries := []domain.ResourceSummary{seededSummary(
			"microsoft.sql/managedinstances",
			[]domain.ResourceSku{{Name: "GP_Gen5", Tier: "GeneralPurpose", Family: "Gen4"}},
			"East US",
		)}

		reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

		assert.Equal(t, []bool{false}, verdicts(reconciled[0].AllRegions[0]))
	})

	t.Run("a seed without a family is a miss", func(t *testing.T) {
		summaries := []domain.ResourceSummary{seededSummary(
			"microsoft.sql/managedinstances",
			[]domain.ResourceSku{{Name: "GP_Gen5", Tier: "GeneralPurpose"}},
			"East US",
		)}

		reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

		assert.Equal(t, []bool{false}, verdicts(reconciled[0].AllRegions[0]),
			"instance editions always catalog a family, so absence cannot match one")
	})
}

func TestReconcileSkus_SQLDatabases(t *testing.T) {
	two := int32(2)
	catalogs := Catalogs{Databases: []domain.SQLRegionSkus{{
		Region:     "East US",
		RegionCode: "eastus",
		Skus:       []domain.SQLSku{{Name: "GP_Gen5_2", Tier: "GeneralPurpose", Family: "Gen5", Capacity: &two}},
	}}}

	t.Run("a seed without a family still matches", func(t *testing.T) {
		summaries := []domain.ResourceSummary{seededSummary(
			"microsoft.sql/servers/databases",
			[]domain.ResourceSku{{Name: "GP_Gen5_2", Tier: "GeneralPurpose", Capacity: &two}},
			"East US",
		)}

		reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

		assert.Equal(t, []bool{true}, verdicts(reconciled[0].AllRegions[0]),
			"not every edition exposes a family; absence cannot disqualify")
	})

	t.Run("capacity mismatch is a miss", func(t *testing.T) {
		four := int32(4)
		summaries := []domain.ResourceSummary{seededSummary(
			"microsoft.sql/servers/databases",
			[]domain.ResourceSku{{Name: "GP_Gen5_2", Tier: "GeneralPurpose", Capacity: &four}},
			"East US",
		)}

		reconciled := ReconcileSkus(context.Background(), summaries, catalogs)

		assert.Equal(t, []bool{false}, verdicts(reconciled[0].AllRegions[0]))
	})
}

func TestReconcileSkus_UnknownFamilyKeepsSeeds(t *testing.T) {
	summaries := []domain.ResourceSummary{seededSummary(
		"microsoft.web/sites",
		[]domain.ResourceSku{{Name: "S1", Tier: "Standard"}},
		"East US",
	)}

	reconciled := ReconcileSkus(context.Background(), summaries, Catalogs{})

	sku := reconciled[0].AllRegions[0].Skus[0]
	assert.Equal(t, "S1", sku.Name)
	assert.Nil(t, sku.Available, "no catalog means no verdict either way")
}

func TestReconcileSkus_IsIdempotent(t *testing.T) {
	catalogs := Catalogs{Storage: []domain.StorageSku{
		{Name: "Standard_LRS", Tier: "Standard", Location: "East US"},
	}}
	summaries := []domain.ResourceSummary{seededSummary(
		"microsoft.storage/storageaccounts",
		[]domain.ResourceSku{{Name: "Standard_LRS", Tier: "Standard"}},
		"East US", "West US",
	)}

	once := ReconcileSkus(context.Background(), summaries, catalogs)
	twice := ReconcileSkus(context.Background(), once, catalogs)

	assert.Equal(t, once, twice)
}
