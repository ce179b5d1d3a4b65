package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/runtime/terminal/export"
	"github.com/warrendt/Azure2AzureTK/pkg/services/assessment"
	"github.com/warrendt/Azure2AzureTK/pkg/services/azure"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

type AssessCmd struct {
	profile   string
	settings  string
	inventory string
	region    string
	reporter  *export.Reporter
}

func NewAssessCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AssessCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Build the region availability matrix for the deployed estate",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.profile, "profile", azure.DefaultProfile, "Azure config profile to use")
	cmd.Flags().StringVar(&ac.settings, "settings", "", "Path to the settings file")
	cmd.Flags().StringVar(&ac.inventory, "inventory", "", "Path to the inventory summary file (defaults to the collect output)")
	cmd.Flags().StringVar(&ac.region, "region", "", `Region display name to project, e.g. "East US"`)

	return cmd
}

func (ac *AssessCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := newRunContext(30 * time.Minute)
	defer cancel()

	d, err := buildDeps(ac.profile, ac.settings)
	if err != nil {
		return err
	}

	inventoryPath := ac.inventory
	if inventoryPath == "" {
		inventoryPath = d.settings.InventoryFile
	}
	if inventoryPath == "" {
		inventoryPath = d.artifacts.Path(artifact.InventoryFile)
	}

	runner := assessment.NewRunner(d.caller, d.artifacts, d.config.SubscriptionID, d.settings.Concurrency)
	summaries, err := runner.Run(ctx, inventoryPath)
	if err != nil {
		return err
	}

	if ac.region == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Availability matrix written to %s (%d resource types)\n",
			d.artifacts.Path(artifact.AvailabilityFile), len(summaries))
		return nil
	}

	return ac.project(cmd, d, summaries)
}

// project narrows the matrix to the requested region, persists the JSON and
// CSV twins and renders the verdict table.
func (ac *AssessCmd) project(cmd *cobra.Command, d *deps, summaries []domain.ResourceSummary) error {
	projected := assessment.ProjectRegion(summaries, ac.region)
	if len(projected) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no entries found for region %q\n", ac.region)
		return nil
	}

	if err := d.artifacts.SaveJSON(artifact.RegionalAvailabilityFile(ac.region), projected); err != nil {
		return err
	}

	csvPath := d.artifacts.Path(artifact.RegionalAvailabilityCSV(ac.region))
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", csvPath, err)
	}
	defer csvFile.Close()

	if err := export.WriteAvailabilityCSV(csvFile, projected); err != nil {
		return err
	}

	return ac.reporter.Handle(buildAvailabilityReport(projected, ac.region))
}

func buildAvailabilityReport(summaries []domain.ResourceSummary, displayName string) *domain.Report {
	available := 0
	details := make([]domain.ReportDetail, 0, len(summaries))

	for _, summary := range summaries {
		region := summary.SelectedRegion[0]
		verdict := "unavailable"
		if region.Available {
			verdict = "available"
			available++
		}

		scored, passed := 0, 0
		for _, sku := range region.Skus {
			if sku.Available == nil {
				continue
			}
			scored++
			if *sku.Available {
				passed++
			}
		}
		description := ""
		if scored > 0 {
			description = fmt.Sprintf("%d/%d skus available", passed, scored)
		}

		details = append(details, domain.ReportDetail{
			Name:        summary.ResourceType,
			Value:       verdict,
			Description: description,
		})
	}

	return &domain.Report{
		Title: fmt.Sprintf("Availability in %s", displayName),
		Sections: []domain.ReportSection{{
			Title:   "Resource Types",
			Summary: fmt.Sprintf("%d of %d resource types can be placed", available, len(summaries)),
			Details: details,
		}},
	}
}
