package assessment

import (
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

// ProjectRegion narrows each summary to a single region's verdict, moving it
// into SelectedRegion and dropping the full matrix. The display name must
// match exactly: matrix entries carry canonical directory names, so a
// near-miss is caller error, not something to paper over. Summaries that do
// not carry the region are excluded, so an unknown name yields an empty
// result.
func ProjectRegion(summaries []domain.ResourceSummary, displayName string) []domain.ResourceSummary {
	projected := make([]domain.ResourceSummary, 0, len(summaries))

	for _, summary := range summaries {
		for _, region := range summary.AllRegions {
			if region.Region != displayName {
				continue
			}
			summary.SelectedRegion = []domain.RegionAvailability{region}
			summary.AllRegions = nil
			projected = append(projected, summary)
			break
		}
	}

	return projected
}
