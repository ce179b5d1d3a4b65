package catalog

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

func TestProvidersImporter_Import(t *testing.T) {
	caller := &fakeCaller{
		get: func(_ context.Context, path, _ string, _ url.Values, out any) error {
			assert.Equal(t, "/subscriptions/sub-1/providers", path)
			return respond(out, arm.ProviderList{Value: []arm.Provider{
				{
					Namespace:         "Microsoft.Web",
					RegistrationState: "Registered",
					ResourceTypes: []arm.ProviderResourceType{
						{ResourceType: "sites", Locations: []string{"East US", "Global"}},
					},
				},
				{
					Namespace:         "Microsoft.Compute",
					RegistrationState: "Registered",
					ResourceTypes: []arm.ProviderResourceType{
						{ResourceType: "virtualMachines", Locations: []string{"East US"}},
					},
				},
			}})
		},
	}

	store := testStore(t)
	importer := NewProvidersImporter(caller, store, "sub-1")

	entries, err := importer.Import(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Microsoft.Compute", entries[0].Namespace, "catalog must be sorted by namespace")
	assert.Equal(t, "Microsoft.Web", entries[1].Namespace)

	var persisted []domain.ProviderEntry
	require.NoError(t, store.LoadJSON(artifact.ProvidersFile, &persisted))
	assert.Equal(t, entries, persisted)
}
