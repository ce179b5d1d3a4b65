package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/models/arm"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

const (
	graphAPIVersion = "2021-03-01"
	graphPath       = "/providers/Microsoft.ResourceGraph/resources"
)

// summaryQuery folds the deployed estate into one row per resource type.
// Compute rows keep their vmSize, everything else keeps its sku block when
// one exists; make_set drops nulls so sku-less types end up with an empty
// list the collector rewrites as the marker.
const summaryQuery = `Resources
| extend skuInfo = case(
    type =~ 'microsoft.compute/virtualmachines', pack('vmSize', tostring(properties.hardwareProfile.vmSize)),
    isnotnull(sku), sku,
    dynamic(null))
| summarize ResourceCount = count(), AzureRegions = make_set(location), ResourceSkus = make_set(skuInfo) by ResourceType = type
| order by ResourceType asc`

// Collector summarizes the deployed estate through Azure Resource Graph and
// writes the inventory file the assessment later normalizes.
type Collector struct {
	caller         armstore.Caller
	artifacts      artifact.Store
	subscriptionID string
}

func NewCollector(caller armstore.Caller, artifacts artifact.Store, subscriptionID string) *Collector {
	return &Collector{caller: caller, artifacts: artifacts, subscriptionID: subscriptionID}
}

func (c *Collector) Collect(ctx context.Context) ([]arm.InventoryRecord, error) {
	logger := zerolog.Ctx(ctx)

	var records []arm.InventoryRecord
	skipToken := ""
	for {
		request := arm.GraphQueryRequest{
			Subscriptions: []string{c.subscriptionID},
			Query:         summaryQuery,
			Options: &arm.GraphQueryOptions{
				ResultFormat: "objectArray",
				SkipToken:    skipToken,
			},
		}

		var response arm.GraphQueryResponse
		if err := c.caller.Post(ctx, graphPath, graphAPIVersion, request, &response); err != nil {
			return nil, fmt.Errorf("failed to query resource graph: %w", err)
		}

		var page []arm.InventoryRecord
		if err := json.Unmarshal(response.Data, &page); err != nil {
			return nil, fmt.Errorf("failed to decode resource graph rows: %w", err)
		}
		records = append(records, page...)

		if response.SkipToken == "" {
			break
		}
		skipToken = response.SkipToken
	}

	// Types without a SKU facet surface as empty sets; store the marker
	// instead so the file says "no SKUs" explicitly.
	for idx := range records {
		if len(records[idx].ResourceSkus.Entries) == 0 {
			records[idx].ResourceSkus.Entries = nil
		}
	}

	if err := c.artifacts.SaveJSON(artifact.InventoryFile, records); err != nil {
		return nil, err
	}

	logger.Info().Int("resource_types", len(records)).Msg("inventory summary collected")
	return records, nil
}
