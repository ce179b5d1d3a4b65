package assessment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/models/domain"
	"github.com/warrendt/Azure2AzureTK/pkg/services/catalog"
	"github.com/warrendt/Azure2AzureTK/pkg/services/inventory"
	"github.com/warrendt/Azure2AzureTK/pkg/services/regions"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

// Runner drives one assessment end to end: region directory, capability
// catalogs, inventory normalization, expansion and reconciliation. Every
// stage persists its artifact before the next one starts.
type Runner struct {
	regions   regions.Explorer
	providers *catalog.ProvidersImporter
	vmSizes   *catalog.VMSizeImporter
	storage   *catalog.StorageSkuImporter
	databases *catalog.SQLDatabaseImporter
	instances *catalog.SQLManagedInstanceImporter
	artifacts artifact.Store
}

func NewRunner(caller armstore.Caller, artifacts artifact.Store, subscriptionID string, concurrency int) *Runner {
	return &Runner{
		regions:   regions.NewExplorer(caller, artifacts, subscriptionID),
		providers: catalog.NewProvidersImporter(caller, artifacts, subscriptionID),
		vmSizes:   catalog.NewVMSizeImporter(caller, artifacts, subscriptionID, concurrency),
		storage:   catalog.NewStorageSkuImporter(caller, artifacts, subscriptionID),
		databases: catalog.NewSQLDatabaseImporter(caller, artifacts, subscriptionID, concurrency),
		instances: catalog.NewSQLManagedInstanceImporter(caller, artifacts, subscriptionID, concurrency),
		artifacts: artifacts,
	}
}

// Run executes the pipeline against the inventory file at inventoryPath and
// returns the reconciled availability matrix.
func (r *Runner) Run(ctx context.Context, inventoryPath string) ([]domain.ResourceSummary, error) {
	logger := zerolog.Ctx(ctx)

	directory, err := r.regions.Directory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build region directory: %w", err)
	}

	entries, err := r.providers.Import(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to import provider catalog: %w", err)
	}
	providerIndex := domain.NewProviderIndex(entries)

	assessable := directory.AssessableRegions()

	vmSkus, err := r.vmSizes.Import(ctx, assessable)
	if err != nil {
		return nil, fmt.Errorf("failed to import vm sizes: %w", err)
	}

	storageSkus, err := r.storage.Import(ctx, assessable)
	if err != nil {
		return nil, fmt.Errorf("failed to import storage skus: %w", err)
	}

	databaseSkus, err := r.databases.Import(ctx, assessable)
	if err != nil {
		return nil, fmt.Errorf("failed to import sql database skus: %w", err)
	}

	instanceSkus, err := r.instances.Import(ctx, assessable)
	if err != nil {
		return nil, fmt.Errorf("failed to import managed instance skus: %w", err)
	}

	records, err := inventory.Load(inventoryPath)
	if err != nil {
		return nil, err
	}

	seeds := inventory.Normalize(ctx, records, directory)
	expanded := ExpandToAllRegions(ctx, seeds, directory, providerIndex)
	reconciled := ReconcileSkus(ctx, expanded, Catalogs{
		VMSizes:   vmSkus,
		Storage:   storageSkus,
		Databases: databaseSkus,
		Instances: instanceSkus,
	})

	if err := r.artifacts.SaveJSON(artifact.AvailabilityFile, reconciled); err != nil {
		return nil, err
	}

	logger.Info().Int("resource_types", len(reconciled)).Msg("assessment complete")
	return reconciled, nil
}
