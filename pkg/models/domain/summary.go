package domain

import (
	"fmt"
	"strings"
)

// ResourceSku is the loosely shaped SKU descriptor carried by inventory
// records: compute seeds carry VMSize, storage and SQL seeds carry subsets of
// name/tier/family/capacity. Available is populated per region during
// reconciliation and stays nil on records that were never assessed.
type ResourceSku struct {
	Name      string `json:"name,omitempty"`
	Tier      string `json:"tier,omitempty"`
	Family    string `json:"family,omitempty"`
	Capacity  *int32 `json:"capacity,omitempty"`
	VMSize    string `json:"vmSize,omitempty"`
	Available *bool  `json:"available,omitempty"`
}

// String renders the populated fields as space-separated key=value tokens,
// e.g. "name=Standard_LRS tier=Standard". Matchers that only understand one
// attribute extract it from this form.
func (s ResourceSku) String() string {
	parts := make([]string, 0, 5)
	if s.Name != "" {
		parts = append(parts, "name="+s.Name)
	}
	if s.Tier != "" {
		parts = append(parts, "tier="+s.Tier)
	}
	if s.Family != "" {
		parts = append(parts, "family="+s.Family)
	}
	if s.Capacity != nil {
		parts = append(parts, fmt.Sprintf("capacity=%d", *s.Capacity))
	}
	if s.VMSize != "" {
		parts = append(parts, "vmSize="+s.VMSize)
	}
	return strings.Join(parts, " ")
}

// RegionAvailability records whether one resource type can land in one
// region, with per-SKU verdicts for the reconciled families.
type RegionAvailability struct {
	Region    string        `json:"region"`
	Available bool          `json:"available"`
	Skus      []ResourceSku `json:"skus,omitempty"`
}

// ResourceSummary is the availability matrix for one deployed resource type.
// ImplementedRegions/ImplementedSkus describe what the estate already runs;
// AllRegions holds the verdict for every canonical region and SelectedRegion
// the projection produced by a region filter.
type ResourceSummary struct {
	ResourceType       string               `json:"resourceType"`
	ResourceCount      int                  `json:"resourceCount"`
	ImplementedRegions []string             `json:"implementedRegions"`
	ImplementedSkus    []ResourceSku        `json:"implementedSkus,omitempty"`
	AllRegions         []RegionAvailability `json:"allRegions,omitempty"`
	SelectedRegion     []RegionAvailability `json:"selectedRegion,omitempty"`
}
