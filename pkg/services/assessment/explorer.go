package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

// ErrRegionNotFound is returned when no assessed summary carries the
// requested region.
var ErrRegionNotFound = errors.New("region not found")

// Explorer serves persisted assessment artifacts to read-only consumers such
// as the web API. It never triggers a new run.
type Explorer interface {
	Regions(ctx context.Context) ([]domain.Region, error)
	Availability(ctx context.Context) ([]domain.ResourceSummary, error)
	RegionAvailability(ctx context.Context, displayName string) ([]domain.ResourceSummary, error)
}

type artifactExplorer struct {
	artifacts artifact.Store
}

func NewExplorer(artifacts artifact.Store) Explorer {
	return &artifactExplorer{artifacts: artifacts}
}

func (e *artifactExplorer) Regions(_ context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	if err := e.artifacts.LoadJSON(artifact.RegionsFile, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (e *artifactExplorer) Availability(_ context.Context) ([]domain.ResourceSummary, error) {
	var summaries []domain.ResourceSummary
	if err := e.artifacts.LoadJSON(artifact.AvailabilityFile, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (e *artifactExplorer) RegionAvailability(ctx context.Context, displayName string) ([]domain.ResourceSummary, error) {
	summaries, err := e.Availability(ctx)
	if err != nil {
		return nil, err
	}

	projected := ProjectRegion(summaries, displayName)
	if len(projected) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, displayName)
	}
	return projected, nil
}
