package arm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkuList_UnmarshalJSON(t *testing.T) {
	capacity := int32(2)

	tests := []struct {
		name     string
		payload  string
		expected []SkuEntry
	}{
		{
			name:     "bare scalar marker",
			payload:  `"N/A"`,
			expected: []SkuEntry{{Name: "N/A"}},
		},
		{
			name:     "marker inside a list",
			payload:  `["N/A"]`,
			expected: []SkuEntry{{Name: "N/A"}},
		},
		{
			name:     "plain string entry",
			payload:  `["Standard_LRS"]`,
			expected: []SkuEntry{{Name: "Standard_LRS"}},
		},
		{
			name:    "descriptor objects",
			payload: `[{"name":"GP_Gen5","tier":"GeneralPurpose","family":"Gen5","capacity":2},{"vmSize":"Standard_D2s_v3"}]`,
			expected: []SkuEntry{
				{Name: "GP_Gen5", Tier: "GeneralPurpose", Family: "Gen5", Capacity: &capacity},
				{VMSize: "Standard_D2s_v3"},
			},
		},
		{
			name:     "null",
			payload:  `null`,
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var list SkuList
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &list))
			assert.Equal(t, tc.expected, list.Entries)
		})
	}
}

func TestSkuList_MarshalJSON(t *testing.T) {
	t.Run("nil entries write the marker", func(t *testing.T) {
		data, err := json.Marshal(SkuList{})
		require.NoError(t, err)
		assert.JSONEq(t, `"N/A"`, string(data))
	})

	t.Run("entries write a list", func(t *testing.T) {
		data, err := json.Marshal(SkuList{Entries: []SkuEntry{{Name: "Standard_LRS", Tier: "Standard"}}})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"Standard_LRS","tier":"Standard"}]`, string(data))
	})
}

func TestInventoryRecord_Unmarshal(t *testing.T) {
	payload := `{
		"ResourceType": "microsoft.compute/virtualmachines",
		"ResourceCount": 3,
		"ResourceSkus": [{"vmSize": "Standard_D2s_v3"}],
		"AzureRegions": ["eastus", "westus"]
	}`

	var record InventoryRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &record))

	assert.Equal(t, "microsoft.compute/virtualmachines", record.ResourceType)
	assert.Equal(t, 3, record.ResourceCount)
	assert.Equal(t, []string{"eastus", "westus"}, record.AzureRegions)
	require.Len(t, record.ResourceSkus.Entries, 1)
	assert.Equal(t, "Standard_D2s_v3", record.ResourceSkus.Entries[0].VMSize)
}
