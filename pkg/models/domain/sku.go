package domain

// VMSku is one virtual machine size accumulated across the region sweep.
// Regions holds display names and grows as more regions report the size.
type VMSku struct {
	Name                 string   `json:"name"`
	NumberOfCores        int32    `json:"numberOfCores"`
	MemoryInMB           int32    `json:"memoryInMB"`
	OSDiskSizeInMB       int32    `json:"osDiskSizeInMB"`
	ResourceDiskSizeInMB int32    `json:"resourceDiskSizeInMB"`
	MaxDataDiskCount     int32    `json:"maxDataDiskCount"`
	Regions              []string `json:"regions"`
}

// StorageSku is one storage offering in one region. Location is the region
// display name; the encryption flags are the only capabilities lifted from
// the wire listing.
type StorageSku struct {
	ResourceType           string `json:"resourceType"`
	Name                   string `json:"name"`
	Tier                   string `json:"tier"`
	Kind                   string `json:"kind,omitempty"`
	Location               string `json:"location"`
	SupportsBlobEncryption bool   `json:"supportsBlobEncryption"`
	SupportsFileEncryption bool   `json:"supportsFileEncryption"`
}

// SQLSku is a flattened SQL offering descriptor shared by databases and
// managed instances. Family is empty for editions that do not expose one.
type SQLSku struct {
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	Family   string `json:"family,omitempty"`
	Capacity *int32 `json:"capacity,omitempty"`
}

// SQLRegionSkus groups the SQL offerings of one region. A region probed
// successfully but offering nothing keeps an empty Skus slice so the artifact
// records the probe.
type SQLRegionSkus struct {
	Region     string   `json:"region"`
	RegionCode string   `json:"regionCode"`
	Skus       []SQLSku `json:"skus"`
}
