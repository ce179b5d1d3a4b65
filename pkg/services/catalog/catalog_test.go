package catalog

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

type fakeCaller struct {
	get  func(ctx context.Context, path, apiVersion string, query url.Values, out any) error
	post func(ctx context.Context, path, apiVersion string, body, out any) error
}

func (f *fakeCaller) Get(ctx context.Context, path, apiVersion string, query url.Values, out any) error {
	if f.get == nil {
		return nil
	}
	return f.get(ctx, path, apiVersion, query, out)
}

func (f *fakeCaller) Post(ctx context.Context, path, apiVersion string, body, out any) error {
	if f.post == nil {
		return nil
	}
	return f.post(ctx, path, apiVersion, body, out)
}

// respond copies a canned payload into the decode target, the same way the
// real client unmarshals a response body.
func respond(out, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func testStore(t *testing.T) artifact.Store {
	t.Helper()
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}
