package arm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NotApplicable marks inventory records whose resource type has no SKU facet.
const NotApplicable = "N/A"

// InventoryRecord is one row of the deployed-resource summary file produced
// by the collect stage.
type InventoryRecord struct {
	ResourceType  string   `json:"ResourceType"`
	ResourceCount int      `json:"ResourceCount"`
	ResourceSkus  SkuList  `json:"ResourceSkus,omitempty"`
	AzureRegions  []string `json:"AzureRegions"`
}

// SkuEntry is a loosely shaped SKU descriptor: compute rows carry VMSize,
// storage and SQL rows carry name/tier/family/capacity subsets.
type SkuEntry struct {
	Name     string `json:"name,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Family   string `json:"family,omitempty"`
	Capacity *int32 `json:"capacity,omitempty"`
	VMSize   string `json:"vmSize,omitempty"`
}

// SkuList tolerates the three encodings the summary file uses for the SKU
// column: a bare scalar marker, a list holding scalar strings, or a list of
// descriptor objects. Scalars are folded into name-only entries so the
// marker forms collapse to one shape.
type SkuList struct {
	Entries []SkuEntry
}

func (l SkuList) MarshalJSON() ([]byte, error) {
	if l.Entries == nil {
		return json.Marshal(NotApplicable)
	}
	return json.Marshal(l.Entries)
}

func (l *SkuList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		l.Entries = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode sku scalar: %w", err)
		}
		l.Entries = []SkuEntry{{Name: s}}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode sku list: %w", err)
	}
	entries := make([]SkuEntry, 0, len(raw))
	for _, m := range raw {
		m = bytes.TrimSpace(m)
		if len(m) > 0 && m[0] == '"' {
			var s string
			if err := json.Unmarshal(m, &s); err != nil {
				return fmt.Errorf("failed to decode sku list element: %w", err)
			}
			entries = append(entries, SkuEntry{Name: s})
			continue
		}
		var e SkuEntry
		if err := json.Unmarshal(m, &e); err != nil {
			return fmt.Errorf("failed to decode sku list element: %w", err)
		}
		entries = append(entries, e)
	}
	l.Entries = entries
	return nil
}
