package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func TestWriteAvailabilityCSV(t *testing.T) {
	available := true
	summaries := []domain.ResourceSummary{
		{
			ResourceType:  "microsoft.storage/storageaccounts",
			ResourceCount: 2,
			SelectedRegion: []domain.RegionAvailability{{
				Region:    "East US",
				Available: true,
				Skus:      []domain.ResourceSku{{Name: "Standard_LRS", Tier: "Standard", Available: &available}},
			}},
		},
		{
			ResourceType:  "microsoft.web/sites",
			ResourceCount: 1,
			SelectedRegion: []domain.RegionAvailability{{
				Region:    "East US",
				Available: false,
			}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAvailabilityCSV(&buf, summaries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per sku or sku-less region")

	assert.Equal(t, "resourceType", rows[0][0])
	assert.Equal(t,
		[]string{"microsoft.storage/storageaccounts", "2", "East US", "true", "Standard_LRS", "Standard", "", "", "", "true"},
		rows[1])
	assert.Equal(t,
		[]string{"microsoft.web/sites", "1", "East US", "false", "", "", "", "", "", ""},
		rows[2])
}
