package arm

// ProviderList is the payload returned by the subscription providers listing.
type ProviderList struct {
	Value []Provider `json:"value"`
}

type Provider struct {
	ID                string                 `json:"id"`
	Namespace         string                 `json:"namespace"`
	RegistrationState string                 `json:"registrationState"`
	ResourceTypes     []ProviderResourceType `json:"resourceTypes"`
}

// ProviderResourceType lists where a type can be placed. Locations are region
// display names ("East US"), occasionally the literal "Global".
type ProviderResourceType struct {
	ResourceType string   `json:"resourceType"`
	Locations    []string `json:"locations"`
	APIVersions  []string `json:"apiVersions"`
	Capabilities string   `json:"capabilities"`
}
