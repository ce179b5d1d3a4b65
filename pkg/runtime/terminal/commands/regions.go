package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/warrendt/Azure2AzureTK/pkg/services/azure"
	"github.com/warrendt/Azure2AzureTK/pkg/services/regions"
)

type RegionsCmd struct {
	profile  string
	settings string
}

func NewRegionsCmd() *cobra.Command {
	rc := &RegionsCmd{}
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regions available to the subscription",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profile, "profile", azure.DefaultProfile, "Azure config profile to use")
	cmd.Flags().StringVar(&rc.settings, "settings", "", "Path to the settings file")

	return cmd
}

func (rc *RegionsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := newRunContext(5 * time.Minute)
	defer cancel()

	d, err := buildDeps(rc.profile, rc.settings)
	if err != nil {
		return err
	}

	explorer := regions.NewExplorer(d.caller, d.artifacts, d.config.SubscriptionID)
	directory, err := explorer.Directory(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-24s %-28s %s\n", "CODE", "DISPLAY NAME", "PAIRED REGION")
	for _, region := range directory.Regions {
		fmt.Fprintf(out, "%-24s %-28s %s\n", region.Code, region.DisplayName, region.PairedRegion)
	}

	return nil
}
