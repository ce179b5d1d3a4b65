package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/warrendt/Azure2AzureTK/pkg/services/azure"
	armstore "github.com/warrendt/Azure2AzureTK/pkg/store/arm"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

// newRunContext builds a context carrying a run-scoped logger. Logs go to
// stderr so tables and CSV output on stdout stay machine-readable.
func newRunContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return logger.WithContext(ctx), cancel
}

// deps bundles everything a command needs to talk to Azure and the artifact
// directory.
type deps struct {
	config    *azure.Config
	settings  *azure.Settings
	caller    *armstore.Client
	artifacts artifact.Store
}

func buildDeps(profile, settingsPath string) (*deps, error) {
	config, err := azure.LoadConfig(profile)
	if err != nil {
		return nil, err
	}

	settings, err := azure.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	caller, err := armstore.NewClient(config.Credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource manager client: %w", err)
	}

	artifacts, err := artifact.NewStore(settings.OutputDir)
	if err != nil {
		return nil, err
	}

	return &deps{
		config:    config,
		settings:  settings,
		caller:    caller,
		artifacts: artifacts,
	}, nil
}
