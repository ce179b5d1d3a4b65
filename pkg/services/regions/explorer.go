package regions

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/adapters"
	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

const locationsAPIVersion = "2022-12-01"

// Explorer builds the canonical region directory for a subscription.
type Explorer interface {
	Directory(ctx context.Context) (*domain.RegionDirectory, error)
}

type explorer struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
}

func NewExplorer(caller armstore.Caller, artifacts artifact.Store, subscriptionID string) Explorer {
	return &explorer{caller: caller, artifacts: artifacts, subscriptionID: subscriptionID}
}

// Directory lists the subscription locations, sorts them by display name and
// persists the result before returning the lookup directory. An empty listing
// is not an error; downstream stages degrade to empty outputs.
func (e *explorer) Directory(ctx context.Context) (*domain.RegionDirectory, error) {
	logger := zerolog.Ctx(ctx)

	var list arm.LocationList
	path := fmt.Sprintf("/subscriptions/%s/locations", e.subscriptionID)
	if err := e.caller.Get(ctx, path, locationsAPIVersion, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list subscription locations: %w", err)
	}

	regions := make([]domain.Region, 0, len(list.Value))
	for _, location := range list.Value {
		regions = append(regions, adapters.MapArmLocationToDomainRegion(location))
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].DisplayName < regions[j].DisplayName
	})

	if len(regions) == 0 {
		logger.Warn().Msg("subscription returned no locations, nothing to assess")
	}

	if err := e.artifacts.SaveJSON(artifact.RegionsFile, regions); err != nil {
		return nil, err
	}

	logger.Info().Int("regions", len(regions)).Msg("region directory ready")
	return domain.NewRegionDirectory(regions), nil
}
