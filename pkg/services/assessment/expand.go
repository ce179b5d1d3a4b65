package assessment

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

// ExpandToAllRegions turns each inventory seed into a full availability
// matrix: one verdict per canonical region, derived from the provider
// catalog. Regions marked available inherit a copy of the seed SKUs for the
// reconciliation pass; unavailable regions never carry SKUs.
func ExpandToAllRegions(ctx context.Context, summaries []domain.ResourceSummary, directory *domain.RegionDirectory, providers *domain.ProviderIndex) []domain.ResourceSummary {
	logger := zerolog.Ctx(ctx)
	regions := directory.AssessableRegions()

	expanded := make([]domain.ResourceSummary, 0, len(summaries))
	for i, summary := range summaries {
		namespace, typeName, ok := splitResourceType(summary.ResourceType)
		if !ok {
			logger.Warn().
				Str("resource_type", summary.ResourceType).
				Int("index", i+1).
				Int("total", len(summaries)).
				Msg("malformed resource type, leaving record unexpanded")
			expanded = append(expanded, summary)
			continue
		}

		locations, known := providers.Locations(namespace, typeName)
		if !known {
			logger.Warn().
				Str("resource_type", summary.ResourceType).
				Int("index", i+1).
				Int("total", len(summaries)).
				Msg("resource type not in provider catalog, leaving record unexpanded")
			expanded = append(expanded, summary)
			continue
		}

		placements := make(map[string]struct{}, len(locations))
		for _, location := range locations {
			placements[strings.ToLower(location)] = struct{}{}
		}
		_, global := placements[strings.ToLower(domain.GlobalScope)]

		summary.AllRegions = make([]domain.RegionAvailability, 0, len(regions))
		for _, region := range regions {
			_, placed := placements[strings.ToLower(region.DisplayName)]
			available := placed || global

			entry := domain.RegionAvailability{
				Region:    region.DisplayName,
				Available: available,
			}
			if available && len(summary.ImplementedSkus) > 0 {
				entry.Skus = slices.Clone(summary.ImplementedSkus)
			}
			summary.AllRegions = append(summary.AllRegions, entry)
		}

		expanded = append(expanded, summary)
	}

	logger.Info().Int("resource_types", len(expanded)).Int("regions", len(regions)).Msg("availability matrix expanded")
	return expanded
}

// splitResourceType separates "Microsoft.Compute/virtualMachines" into
// namespace and type suffix. Nested types keep their full suffix
// ("servers/databases"). A value without a separator is malformed.
func splitResourceType(resourceType string) (string, string, bool) {
	parts := strings.SplitN(resourceType, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
