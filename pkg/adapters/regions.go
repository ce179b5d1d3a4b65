package adapters

import (
	"strings"

	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func MapArmLocationToDomainRegion(location arm.Location) domain.Region {
	region := domain.Region{
		Code:        location.Name,
		DisplayName: location.DisplayName,
	}

	if location.Metadata == nil {
		return region
	}

	region.RegionType = location.Metadata.RegionType
	region.RegionCategory = location.Metadata.RegionCategory
	region.Geography = location.Metadata.Geography
	region.GeographyGroup = location.Metadata.GeographyGroup
	region.PhysicalLocation = location.Metadata.PhysicalLocation
	region.Latitude = location.Metadata.Latitude
	region.Longitude = location.Metadata.Longitude

	if len(location.Metadata.PairedRegion) > 0 {
		region.PairedRegion = pairedRegionCode(location.Metadata.PairedRegion[0])
	}

	return region
}

// pairedRegionCode reduces a paired region reference to its bare region code.
// The wire form carries a subscription-scoped resource ID which must not
// surface in any artifact.
func pairedRegionCode(pair arm.PairedRegion) string {
	if pair.Name != "" {
		return pair.Name
	}
	if idx := strings.LastIndex(pair.ID, "/"); idx >= 0 {
		return pair.ID[idx+1:]
	}
	return pair.ID
}
