package arm

// StorageSkuList is the payload of the Microsoft.Storage SKU listing. The
// listing is subscription-wide; Locations carries region codes ("eastus").
type StorageSkuList struct {
	Value []StorageSku `json:"value"`
}

type StorageSku struct {
	ResourceType string                  `json:"resourceType"`
	Name         string                  `json:"name"`
	Tier         string                  `json:"tier"`
	Kind         string                  `json:"kind"`
	Locations    []string                `json:"locations"`
	Capabilities []StorageSkuCapability  `json:"capabilities"`
	Restrictions []StorageSkuRestriction `json:"restrictions"`
}

type StorageSkuCapability struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type StorageSkuRestriction struct {
	Type       string   `json:"type"`
	Values     []string `json:"values"`
	ReasonCode string   `json:"reasonCode"`
}
