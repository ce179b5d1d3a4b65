package adapters

import (
	"github.com/warrendt/Azure2AzureTK/pkg/models/api"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func MapRegionDomainToApi(region domain.Region) api.Region {
	return api.Region{
		Code:           region.Code,
		DisplayName:    region.DisplayName,
		RegionType:     region.RegionType,
		RegionCategory: region.RegionCategory,
		Geography:      region.Geography,
		GeographyGroup: region.GeographyGroup,
		PairedRegion:   region.PairedRegion,
	}
}

func MapResourceSummaryDomainToApi(summary domain.ResourceSummary) api.ResourceAvailability {
	regions := summary.AllRegions
	if len(summary.SelectedRegion) > 0 {
		regions = summary.SelectedRegion
	}

	availability := api.ResourceAvailability{
		ResourceType:       summary.ResourceType,
		ResourceCount:      summary.ResourceCount,
		ImplementedRegions: summary.ImplementedRegions,
		Regions:            make([]api.RegionAvailability, 0, len(regions)),
	}

	for _, r := range regions {
		availability.Regions = append(availability.Regions, MapRegionAvailabilityDomainToApi(r))
	}

	return availability
}

func MapRegionAvailabilityDomainToApi(region domain.RegionAvailability) api.RegionAvailability {
	mapped := api.RegionAvailability{
		Region:    region.Region,
		Available: region.Available,
	}
	for _, sku := range region.Skus {
		mapped.Skus = append(mapped.Skus, api.ResourceSku{
			Name:      sku.Name,
			Tier:      sku.Tier,
			Family:    sku.Family,
			Capacity:  sku.Capacity,
			VMSize:    sku.VMSize,
			Available: sku.Available,
		})
	}
	return mapped
}
