package commands

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/spf13/cobra"

	"github.com/warrendt/Azure2AzureTK/pkg/runtime/terminal/export"
	"github.com/warrendt/Azure2AzureTK/pkg/services/azure"
	"github.com/warrendt/Azure2AzureTK/pkg/services/cost"
)

type CostCmd struct {
	profile  string
	duration int
	reporter *export.Reporter
}

func NewCostCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CostCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Summarize actual spend by region",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profile, "profile", azure.DefaultProfile, "Azure config profile to use")
	cmd.Flags().IntVar(&cc.duration, "duration", 30, "Duration in days to analyze")

	return cmd
}

func (cc *CostCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := newRunContext(5 * time.Minute)
	defer cancel()

	config, err := azure.LoadConfig(cc.profile)
	if err != nil {
		return err
	}

	factory, err := armcostmanagement.NewClientFactory(config.Credentials, nil)
	if err != nil {
		return fmt.Errorf("failed to create cost management client: %w", err)
	}

	analyzer := cost.NewAnalyzer(factory, config.SubscriptionID)
	report, err := analyzer.SpendByRegion(ctx, cc.duration)
	if err != nil {
		return err
	}

	return cc.reporter.Handle(report)
}
