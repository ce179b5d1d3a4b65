package adapters

import (
	"strings"

	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

func MapArmVMSizeToDomainSku(size arm.VMSize) domain.VMSku {
	return domain.VMSku{
		Name:                 size.Name,
		NumberOfCores:        size.NumberOfCores,
		MemoryInMB:           size.MemoryInMB,
		OSDiskSizeInMB:       size.OSDiskSizeInMB,
		ResourceDiskSizeInMB: size.ResourceDiskSizeInMB,
		MaxDataDiskCount:     size.MaxDataDiskCount,
	}
}

// MapArmStorageSkuToDomainSku flattens one storage SKU into a single-region
// record. Location must be the region display name resolved by the caller.
func MapArmStorageSkuToDomainSku(sku arm.StorageSku, location string) domain.StorageSku {
	return domain.StorageSku{
		ResourceType:           sku.ResourceType,
		Name:                   sku.Name,
		Tier:                   sku.Tier,
		Kind:                   sku.Kind,
		Location:               location,
		SupportsBlobEncryption: storageCapability(sku.Capabilities, "supportsblobencryption"),
		SupportsFileEncryption: storageCapability(sku.Capabilities, "supportsfileencryption"),
	}
}

func storageCapability(capabilities []arm.StorageSkuCapability, name string) bool {
	for _, c := range capabilities {
		if strings.EqualFold(c.Name, name) {
			return strings.EqualFold(c.Value, "true")
		}
	}
	return false
}

func MapSQLServiceObjectiveToDomainSku(slo arm.SQLServiceLevelObjective) domain.SQLSku {
	if slo.SKU == nil {
		return domain.SQLSku{Name: slo.Name}
	}
	capacity := slo.SKU.Capacity
	return domain.SQLSku{
		Name:     slo.SKU.Name,
		Tier:     slo.SKU.Tier,
		Family:   slo.SKU.Family,
		Capacity: &capacity,
	}
}

func MapSQLInstanceVcoreToDomainSku(edition arm.SQLInstanceEdition, family arm.SQLInstanceFamily, vcore arm.SQLVcoreValue) domain.SQLSku {
	capacity := vcore.Value
	name := family.SKU
	if name == "" {
		name = vcore.Name
	}
	return domain.SQLSku{
		Name:     name,
		Tier:     edition.Name,
		Family:   family.Name,
		Capacity: &capacity,
	}
}

func MapArmSkuEntryToDomainSku(entry arm.SkuEntry) domain.ResourceSku {
	return domain.ResourceSku{
		Name:     entry.Name,
		Tier:     entry.Tier,
		Family:   entry.Family,
		Capacity: entry.Capacity,
		VMSize:   entry.VMSize,
	}
}
