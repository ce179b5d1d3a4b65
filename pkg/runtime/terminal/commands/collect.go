package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/warrendt/Azure2AzureTK/pkg/services/azure"
	"github.com/warrendt/Azure2AzureTK/pkg/services/inventory"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

type CollectCmd struct {
	profile  string
	settings string
}

func NewCollectCmd() *cobra.Command {
	cc := &CollectCmd{}
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Summarize deployed resources into an inventory file",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profile, "profile", azure.DefaultProfile, "Azure config profile to use")
	cmd.Flags().StringVar(&cc.settings, "settings", "", "Path to the settings file")

	return cmd
}

func (cc *CollectCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := newRunContext(10 * time.Minute)
	defer cancel()

	d, err := buildDeps(cc.profile, cc.settings)
	if err != nil {
		return err
	}

	collector := inventory.NewCollector(d.caller, d.artifacts, d.config.SubscriptionID)
	records, err := collector.Collect(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inventory written to %s (%d resource types)\n",
		d.artifacts.Path(artifact.InventoryFile), len(records))
	return nil
}
