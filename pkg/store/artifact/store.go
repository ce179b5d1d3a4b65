package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact names written during an assessment run.
const (
	RegionsFile                = "azure_regions.json"
	ProvidersFile              = "azure_providers.json"
	VMSkusFile                 = "vm_skus.json"
	StorageSkusFile            = "storage_skus.json"
	SQLDatabaseSkusFile        = "sql_database_skus.json"
	SQLManagedInstanceSkusFile = "sql_managed_instance_skus.json"
	InventoryFile              = "resource_summary.json"
	AvailabilityFile           = "resource_availability.json"
)

// Store persists run artifacts as JSON documents in a single directory.
type Store interface {
	SaveJSON(name string, v any) error
	LoadJSON(name string, out any) error
	Path(name string) string
	Dir() string
}

type fileStore struct {
	dir string
}

func NewStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) SaveJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *fileStore) LoadJSON(name string, out any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (s *fileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *fileStore) Dir() string {
	return s.dir
}

// RegionalAvailabilityFile names the region-filtered availability artifact.
// Whitespace in the display name collapses to single underscores so "East US"
// yields resource_availability_East_US.json.
func RegionalAvailabilityFile(displayName string) string {
	return "resource_availability_" + sanitizeRegionName(displayName) + ".json"
}

// RegionalAvailabilityCSV names the flattened CSV twin of the regional
// artifact.
func RegionalAvailabilityCSV(displayName string) string {
	return "resource_availability_" + sanitizeRegionName(displayName) + ".csv"
}

func sanitizeRegionName(displayName string) string {
	return strings.Join(strings.Fields(displayName), "_")
}
