package api

type Region struct {
	Code           string `json:"code"`
	DisplayName    string `json:"display_name"`
	RegionType     string `json:"region_type,omitempty"`
	RegionCategory string `json:"region_category,omitempty"`
	Geography      string `json:"geography,omitempty"`
	GeographyGroup string `json:"geography_group,omitempty"`
	PairedRegion   string `json:"paired_region,omitempty"`
}

type ResourceSku struct {
	Name      string `json:"name,omitempty"`
	Tier      string `json:"tier,omitempty"`
	Family    string `json:"family,omitempty"`
	Capacity  *int32 `json:"capacity,omitempty"`
	VMSize    string `json:"vm_size,omitempty"`
	Available *bool  `json:"available,omitempty"`
}

type RegionAvailability struct {
	Region    string        `json:"region"`
	Available bool          `json:"available"`
	Skus      []ResourceSku `json:"skus,omitempty"`
}

type ResourceAvailability struct {
	ResourceType       string               `json:"resource_type"`
	ResourceCount      int                  `json:"resource_count"`
	ImplementedRegions []string             `json:"implemented_regions"`
	Regions            []RegionAvailability `json:"regions,omitempty"`
}
