package inventory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func testDirectory() *domain.RegionDirectory {
	return domain.NewRegionDirectory([]domain.Region{
		{Code: "eastus", DisplayName: "East US"},
		{Code: "westus", DisplayName: "West US"},
	})
}

func TestNormalize_SentinelFormsAreEquivalent(t *testing.T) {
	payloads := []string{
		`[{"ResourceType":"microsoft.web/sites","ResourceCount":1,"ResourceSkus":"N/A","AzureRegions":["eastus"]}]`,
		`[{"ResourceType":"microsoft.web/sites","ResourceCount":1,"ResourceSkus":["N/A"],"AzureRegions":["eastus"]}]`,
	}

	var results [][]domain.ResourceSummary
	for _, payload := range payloads {
		var records []arm.InventoryRecord
		require.NoError(t, json.Unmarshal([]byte(payload), &records))
		results = append(results, Normalize(context.Background(), records, testDirectory()))
	}

	assert.Equal(t, results[0], results[1])
	assert.Nil(t, results[0][0].ImplementedSkus)
}

func TestNormalize_RegionCodesBecomeDisplayNames(t *testing.T) {
	records := []arm.InventoryRecord{{
		ResourceType:  "microsoft.compute/virtualmachines",
		ResourceCount: 2,
		AzureRegions:  []string{"eastus", "departedregion"},
	}}

	summaries := Normalize(context.Background(), records, testDirectory())

	require.Len(t, summaries, 1)
	assert.Equal(t, []string{"East US", "departedregion"}, summaries[0].ImplementedRegions,
		"unknown codes pass through untranslated")
}

func TestNormalize_KeepsSkuDescriptors(t *testing.T) {
	capacity := int32(2)
	records := []arm.InventoryRecord{{
		ResourceType:  "microsoft.sql/servers/databases",
		ResourceCount: 1,
		ResourceSkus: arm.SkuList{Entries: []arm.SkuEntry{
			{Name: "GP_Gen5", Tier: "GeneralPurpose", Family: "Gen5", Capacity: &capacity},
		}},
		AzureRegions: []string{"westus"},
	}}

	summaries := Normalize(context.Background(), records, testDirectory())

	require.Len(t, summaries, 1)
	require.Len(t, summaries[0].ImplementedSkus, 1)
	sku := summaries[0].ImplementedSkus[0]
	assert.Equal(t, "GP_Gen5", sku.Name)
	assert.Equal(t, "Gen5", sku.Family)
	require.NotNil(t, sku.Capacity)
	assert.Equal(t, int32(2), *sku.Capacity)
	assert.Nil(t, sku.Available, "no verdicts before reconciliation")
}

func TestLoad(t *testing.T) {
	t.Run("reads a summary file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resource_summary.json")
		payload := `[{"ResourceType":"microsoft.web/sites","ResourceCount":3,"ResourceSkus":"N/A","AzureRegions":["eastus"]}]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		records, err := Load(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 3, records[0].ResourceCount)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
