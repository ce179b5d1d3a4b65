package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/warrendt/Azure2AzureTK/pkg/runtime/terminal/commands"
	"github.com/warrendt/Azure2AzureTK/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a2atk",
		Short: "Azure region-to-region migration assessment toolkit",
	}

	cmd.AddCommand(commands.NewCollectCmd())
	cmd.AddCommand(commands.NewAssessCmd(cli.reporter))
	cmd.AddCommand(commands.NewRegionsCmd())
	cmd.AddCommand(commands.NewCostCmd(cli.reporter))

	return cmd
}
