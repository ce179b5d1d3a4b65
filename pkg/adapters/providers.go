package adapters

import (
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func MapArmProviderToDomainEntry(provider arm.Provider) domain.ProviderEntry {
	entry := domain.ProviderEntry{
		Namespace:         provider.Namespace,
		RegistrationState: provider.RegistrationState,
		ResourceTypes:     make([]domain.ProviderResourceType, 0, len(provider.ResourceTypes)),
	}

	for _, rt := range provider.ResourceTypes {
		entry.ResourceTypes = append(entry.ResourceTypes, domain.ProviderResourceType{
			ResourceType: rt.ResourceType,
			Locations:    rt.Locations,
		})
	}

	return entry
}
