package regions

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

type fakeCaller struct {
	get func(ctx context.Context, path, apiVersion string, query url.Values, out any) error
}

func (f *fakeCaller) Get(ctx context.Context, path, apiVersion string, query url.Values, out any) error {
	return f.get(ctx, path, apiVersion, query, out)
}

func (f *fakeCaller) Post(_ context.Context, _, _ string, _, _ any) error {
	return nil
}

func TestExplorer_Directory(t *testing.T) {
	caller := &fakeCaller{
		get: func(_ context.Context, _, _ string, _ url.Values, out any) error {
			payload := arm.LocationList{Value: []arm.Location{
				{
					ID:          "/subscriptions/f00d-1234/locations/westus",
					Name:        "westus",
					DisplayName: "West US",
					Metadata: &arm.LocationMetadata{
						Geography:      "United States",
						GeographyGroup: "US",
						PairedRegion: []arm.PairedRegion{{
							Name: "eastus",
							ID:   "/subscriptions/f00d-1234/locations/eastus",
						}},
					},
				},
				{
					ID:          "/subscriptions/f00d-1234/locations/eastus",
					Name:        "eastus",
					DisplayName: "East US",
				},
			}}
			data, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			return json.Unmarshal(data, out)
		},
	}

	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)

	directory, err := NewExplorer(caller, store, "f00d-1234").Directory(context.Background())
	require.NoError(t, err)

	t.Run("sorted by display name", func(t *testing.T) {
		require.Len(t, directory.Regions, 2)
		assert.Equal(t, "East US", directory.Regions[0].DisplayName)
		assert.Equal(t, "West US", directory.Regions[1].DisplayName)
	})

	t.Run("paired region is a bare code", func(t *testing.T) {
		assert.Equal(t, "eastus", directory.Regions[1].PairedRegion)
	})

	t.Run("artifact carries no subscription-scoped identifiers", func(t *testing.T) {
		data, err := json.Marshal(directory.Regions)
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(data), "/subscriptions/"))
		assert.False(t, strings.Contains(string(data), "f00d-1234"))
	})

	t.Run("metadata fields are lifted", func(t *testing.T) {
		assert.Equal(t, "United States", directory.Regions[1].Geography)
		assert.Equal(t, "US", directory.Regions[1].GeographyGroup)
	})
}
