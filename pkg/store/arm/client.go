package arm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

const (
	moduleName    = "a2atk"
	moduleVersion = "v0.1.0"
)

// Caller is the raw Azure Resource Manager surface the importers talk to.
// Paths are endpoint-relative ("/subscriptions/{id}/locations"); query holds
// extra parameters beyond api-version and may be nil.
type Caller interface {
	Get(ctx context.Context, path string, apiVersion string, query url.Values, out any) error
	Post(ctx context.Context, path string, apiVersion string, body any, out any) error
}

// Client calls ARM endpoints the generated SDK clients do not cover, reusing
// the azcore pipeline so retry and auth behave like the rest of the SDK.
type Client struct {
	endpoint string
	pipeline runtime.Pipeline
}

func NewClient(cred azcore.TokenCredential) (*Client, error) {
	rm, ok := cloud.AzurePublic.Services[cloud.ResourceManager]
	if !ok {
		return nil, fmt.Errorf("cloud configuration is missing the resource manager service")
	}

	authPolicy := runtime.NewBearerTokenPolicy(cred, []string{rm.Audience + "/.default"}, nil)
	pl := runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{
		PerRetry: []policy.Policy{authPolicy},
	}, nil)

	return &Client{endpoint: rm.Endpoint, pipeline: pl}, nil
}

func (c *Client) Get(ctx context.Context, path string, apiVersion string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, apiVersion, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, apiVersion string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, apiVersion, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path, apiVersion string, query url.Values, body, out any) error {
	req, err := runtime.NewRequest(ctx, method, runtime.JoinPaths(c.endpoint, path))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	qp := req.Raw().URL.Query()
	qp.Set("api-version", apiVersion)
	for key, values := range query {
		for _, value := range values {
			qp.Add(key, value)
		}
	}
	req.Raw().URL.RawQuery = qp.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}

	if body != nil {
		if err := runtime.MarshalAsJSON(req, body); err != nil {
			return fmt.Errorf("failed to encode request body for %s: %w", path, err)
		}
	}

	resp, err := c.pipeline.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return runtime.NewResponseError(resp)
	}

	if out != nil {
		if err := runtime.UnmarshalAsJSON(resp, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}
