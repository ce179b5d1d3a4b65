package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

// Load reads an inventory summary file. A missing or malformed file is fatal
// for the run, so the error carries the path.
func Load(path string) ([]arm.InventoryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file %s: %w", path, err)
	}

	var records []arm.InventoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file %s: %w", path, err)
	}
	return records, nil
}

// Normalize reshapes raw inventory records into assessment seeds: region
// codes become display names through the directory, and SKU lists whose sole
// content is the not-applicable marker are dropped entirely.
func Normalize(ctx context.Context, records []arm.InventoryRecord, directory *domain.RegionDirectory) []domain.ResourceSummary {
	logger := zerolog.Ctx(ctx)

	summaries := make([]domain.ResourceSummary, 0, len(records))
	for _, record := range records {
		summary := domain.ResourceSummary{
			ResourceType:       record.ResourceType,
			ResourceCount:      record.ResourceCount,
			ImplementedRegions: make([]string, 0, len(record.AzureRegions)),
			ImplementedSkus:    normalizeSkus(record.ResourceSkus.Entries),
		}
		for _, code := range record.AzureRegions {
			if _, ok := directory.ByCode(code); !ok {
				logger.Warn().
					Str("resource_type", record.ResourceType).
					Str("region", code).
					Msg("region code has no directory entry, passing through unchanged")
			}
			summary.ImplementedRegions = append(summary.ImplementedRegions, directory.DisplayNameFor(code))
		}
		summaries = append(summaries, summary)
	}

	logger.Info().Int("resource_types", len(summaries)).Msg("inventory normalized")
	return summaries
}

func normalizeSkus(entries []arm.SkuEntry) []domain.ResourceSku {
	skus := make([]domain.ResourceSku, 0, len(entries))
	for _, entry := range entries {
		if isNotApplicable(entry) {
			continue
		}
		skus = append(skus, adapters.MapArmSkuEntryToDomainSku(entry))
	}
	if len(skus) == 0 {
		return nil
	}
	return skus
}

// isNotApplicable spots the marker in either of its encodings: a bare scalar
// and a single-element list both parse to a name-only entry.
func isNotApplicable(entry arm.SkuEntry) bool {
	return strings.EqualFold(entry.Name, arm.NotApplicable) &&
		entry.Tier == "" && entry.Family == "" && entry.Capacity == nil && entry.VMSize == ""
}
