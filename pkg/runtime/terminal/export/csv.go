package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

// WriteAvailabilityCSV flattens summaries into one row per region and SKU.
// Summaries carrying a projected region emit only that region; regions
// without SKUs emit a single row with the SKU columns blank.
func WriteAvailabilityCSV(w io.Writer, summaries []domain.ResourceSummary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"resourceType", "resourceCount", "region", "regionAvailable",
		"skuName", "skuTier", "skuFamily", "skuCapacity", "vmSize", "skuAvailable",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, summary := range summaries {
		regions := summary.AllRegions
		if len(summary.SelectedRegion) > 0 {
			regions = summary.SelectedRegion
		}

		for _, region := range regions {
			if len(region.Skus) == 0 {
				row := baseRow(summary, region)
				row = append(row, "", "", "", "", "", "")
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write csv row: %w", err)
				}
				continue
			}

			for _, sku := range region.Skus {
				row := baseRow(summary, region)
				row = append(row, sku.Name, sku.Tier, sku.Family, formatCapacity(sku.Capacity), sku.VMSize, formatVerdict(sku.Available))
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write csv row: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func baseRow(summary domain.ResourceSummary, region domain.RegionAvailability) []string {
	return []string{
		summary.ResourceType,
		strconv.Itoa(summary.ResourceCount),
		region.Region,
		strconv.FormatBool(region.Available),
	}
}

func formatCapacity(capacity *int32) string {
	if capacity == nil {
		return ""
	}
	return strconv.FormatInt(int64(*capacity), 10)
}

func formatVerdict(available *bool) string {
	if available == nil {
		return ""
	}
	return strconv.FormatBool(*available)
}
