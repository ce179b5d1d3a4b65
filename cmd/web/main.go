package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/warrendt/Azure2AzureTK/pkg/server"
	"github.com/warrendt/Azure2AzureTK/pkg/services/assessment"
	"github.com/warrendt/Azure2AzureTK/pkg/services/azure"
	"github.com/warrendt/Azure2AzureTK/pkg/store/artifact"
)

var artifactDir string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve assessment artifacts over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&artifactDir, "artifacts", "a", azure.DefaultOutputDir,
		"Directory holding the assessment artifacts")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	artifacts, err := artifact.NewStore(artifactDir)
	if err != nil {
		return err
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		return fmt.Errorf("missing SERVER_HOST or SERVER_PORT configuration")
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Assessment: assessment.NewExplorer(artifacts),
		},
	})

	logger.Info().Str("artifacts", artifacts.Dir()).Msg("serving assessment artifacts")
	return api.Start()
}
