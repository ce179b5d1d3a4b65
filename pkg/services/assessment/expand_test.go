package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func testDirectory() *domain.RegionDirectory {
	return domain.NewRegionDirectory([]domain.Region{
		{Code: "eastus", DisplayName: "East US"},
		{Code: "global", DisplayName: "Global"},
		{Code: "northeurope", DisplayName: "North Europe"},
		{Code: "westus", DisplayName: "West US"},
	})
}

func testProviders(entries ...domain.ProviderEntry) *domain.ProviderIndex {
	return domain.NewProviderIndex(entries)
}

func TestExpandToAllRegions(t *testing.T) {
	directory := testDirectory()
	providers := testProviders(domain.ProviderEntry{
		Namespace: "Microsoft.Storage",
		ResourceTypes: []domain.ProviderResourceType{
			{ResourceType: "storageAccounts", Locations: []string{"East US", "West US"}},
			{ResourceType: "nowhereAccounts", Locations: []string{}},
		},
	}, domain.ProviderEntry{
		Namespace: "Microsoft.Insights",
		ResourceTypes: []domain.ProviderResourceType{
			{ResourceType: "components", Locations: []string{"East US", "Global"}},
		},
	})

	t.Run("matrix covers every region except global", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{ResourceType: "microsoft.storage/storageAccounts"}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		require.Len(t, expanded, 1)
		require.Len(t, expanded[0].AllRegions, 3, "the Global pseudo-region is not a target")

		byRegion := map[string]bool{}
		for _, region := range expanded[0].AllRegions {
			byRegion[region.Region] = region.Available
		}
		assert.True(t, byRegion["East US"])
		assert.False(t, byRegion["North Europe"])
		assert.True(t, byRegion["West US"])
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{ResourceType: "MICROSOFT.STORAGE/STORAGEACCOUNTS"}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		require.Len(t, expanded[0].AllRegions, 3)
		assert.True(t, expanded[0].AllRegions[0].Available)
	})

	t.Run("no supported locations means unavailable everywhere", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{ResourceType: "microsoft.storage/nowhereAccounts"}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		require.Len(t, expanded[0].AllRegions, 3)
		for _, region := range expanded[0].AllRegions {
			assert.False(t, region.Available)
		}
	})

	t.Run("global marker means available everywhere", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{ResourceType: "microsoft.insights/components"}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		require.Len(t, expanded[0].AllRegions, 3)
		for _, region := range expanded[0].AllRegions {
			assert.True(t, region.Available, "global types place in %s too", region.Region)
		}
	})

	t.Run("malformed resource type stays unexpanded", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{ResourceType: "notatype"}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		require.Len(t, expanded, 1, "the record survives, just without a matrix")
		assert.Nil(t, expanded[0].AllRegions)
	})

	t.Run("unknown namespace stays unexpanded", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{ResourceType: "microsoft.unheard/ofThings"}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		assert.Nil(t, expanded[0].AllRegions)
	})

	t.Run("available regions inherit the seed skus", func(t *testing.T) {
		summaries := []domain.ResourceSummary{{
			ResourceType:    "microsoft.storage/storageAccounts",
			ImplementedSkus: []domain.ResourceSku{{Name: "Standard_LRS", Tier: "Standard"}},
		}}

		expanded := ExpandToAllRegions(context.Background(), summaries, directory, providers)

		for _, region := range expanded[0].AllRegions {
			if region.Available {
				require.Len(t, region.Skus, 1)
				assert.Equal(t, "Standard_LRS", region.Skus[0].Name)
			} else {
				assert.Empty(t, region.Skus)
			}
		}
	})
}
