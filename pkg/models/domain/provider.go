package domain

import "strings"

// ProviderEntry is the capability record for one resource provider namespace.
type ProviderEntry struct {
	Namespace         string                 `json:"namespace"`
	RegistrationState string                 `json:"registrationState,omitempty"`
	ResourceTypes     []ProviderResourceType `json:"resourceTypes"`
}

// ProviderResourceType pairs a type suffix ("virtualMachines") with the
// region display names it can be placed in.
type ProviderResourceType struct {
	ResourceType string   `json:"resourceType"`
	Locations    []string `json:"locations"`
}

// ProviderIndex answers case-insensitive namespace/type lookups against a
// provider catalog.
type ProviderIndex struct {
	locations map[string]map[string][]string
}

func NewProviderIndex(entries []ProviderEntry) *ProviderIndex {
	ix := &ProviderIndex{locations: make(map[string]map[string][]string, len(entries))}
	for _, entry := range entries {
		ns := strings.ToLower(entry.Namespace)
		types, ok := ix.locations[ns]
		if !ok {
			types = make(map[string][]string, len(entry.ResourceTypes))
			ix.locations[ns] = types
		}
		for _, rt := range entry.ResourceTypes {
			types[strings.ToLower(rt.ResourceType)] = rt.Locations
		}
	}
	return ix
}

// Locations returns the placement list for namespace/resourceType. The second
// return is false when the catalog has no such type.
func (ix *ProviderIndex) Locations(namespace, resourceType string) ([]string, bool) {
	types, ok := ix.locations[strings.ToLower(namespace)]
	if !ok {
		return nil, false
	}
	locations, ok := types[strings.ToLower(resourceType)]
	return locations, ok
}
