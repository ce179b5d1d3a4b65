package cost

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
)

// Analyzer summarizes actual subscription spend per region, so migration
// targets can be weighed against where the money goes today.
type Analyzer struct {
	factory *armcostmanagement.ClientFactory
	scope   string
}

func NewAnalyzer(factory *armcostmanagement.ClientFactory, subscriptionID string) *Analyzer {
	return &Analyzer{
		factory: factory,
		scope:   fmt.Sprintf("/subscriptions/%s", subscriptionID),
	}
}

type regionSpend struct {
	region   string
	amount   float64
	currency string
}

// SpendByRegion queries actual cost over the trailing window grouped by the
// ResourceLocation dimension and renders one report row per region, highest
// spend first.
func (a *Analyzer) SpendByRegion(ctx context.Context, days int) (*domain.Report, error) {
	client := a.factory.NewQueryClient()

	timeTo := time.Now()
	timeFrom := timeTo.AddDate(0, 0, -days)

	exportType := armcostmanagement.ExportTypeActualCost
	granularity := armcostmanagement.GranularityTypeDaily
	timeframe := armcostmanagement.TimeframeTypeCustom
	dimension := armcostmanagement.QueryColumnTypeDimension
	sum := armcostmanagement.FunctionTypeSum

	params := armcostmanagement.QueryDefinition{
		Type:      &exportType,
		Timeframe: &timeframe,
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: &timeFrom,
			To:   &timeTo,
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: &granularity,
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: &sum,
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Name: to.Ptr("ResourceLocation"),
					Type: &dimension,
				},
			},
		},
	}

	result, err := client.Usage(ctx, a.scope, params, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}

	costIdx := columnIndex(result.Properties.Columns, "Cost")
	regionIdx := columnIndex(result.Properties.Columns, "ResourceLocation")
	currencyIdx := columnIndex(result.Properties.Columns, "Currency")
	if costIdx < 0 || regionIdx < 0 {
		return nil, fmt.Errorf("cost query returned an unexpected column layout")
	}

	spend := make(map[string]*regionSpend)
	for _, row := range result.Properties.Rows {
		if len(row) <= costIdx || len(row) <= regionIdx {
			continue
		}
		amount, ok := row[costIdx].(float64)
		if !ok {
			continue
		}
		region, _ := row[regionIdx].(string)
		if region == "" {
			region = "Unassigned"
		}

		entry, ok := spend[region]
		if !ok {
			entry = &regionSpend{region: region}
			spend[region] = entry
		}
		entry.amount += amount
		if currencyIdx >= 0 && len(row) > currencyIdx {
			if currency, ok := row[currencyIdx].(string); ok {
				entry.currency = currency
			}
		}
	}

	entries := make([]*regionSpend, 0, len(spend))
	for _, entry := range spend {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].amount > entries[j].amount
	})

	var total float64
	currency := ""
	details := make([]domain.ReportDetail, 0, len(entries))
	for _, entry := range entries {
		total += entry.amount
		if currency == "" {
			currency = entry.currency
		}
		details = append(details, domain.ReportDetail{
			Name:        entry.region,
			Value:       fmt.Sprintf("%.2f", entry.amount),
			Unit:        entry.currency,
			Description: fmt.Sprintf("actual cost over %d days", days),
		})
	}

	return &domain.Report{
		Title: "Azure Spend by Region",
		Period: domain.TimePeriod{
			Start:    timeFrom,
			End:      timeTo,
			Duration: days,
		},
		Sections: []domain.ReportSection{{
			Title:   "Regional Cost",
			Summary: fmt.Sprintf("%.2f %s across %d regions", total, currency, len(details)),
			Details: details,
		}},
	}, nil
}

func columnIndex(columns []*armcostmanagement.QueryColumn, name string) int {
	for i, column := range columns {
		if column != nil && column.Name != nil && strings.EqualFold(*column.Name, name) {
			return i
		}
	}
	return -1
}
