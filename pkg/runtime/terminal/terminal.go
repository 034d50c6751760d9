package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/drive-tools/fare-atlas/pkg/runtime/terminal/commands"
	"github.com/drive-tools/fare-atlas/pkg/runtime/terminal/export"
	"github.com/drive-tools/fare-atlas/pkg/services/ledger"
)

// CLI represents the command-line interface
type CLI struct {
	ledger   ledger.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Ledger ledger.Service
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		ledger:   opts.Ledger,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fare",
		Short: "Rideshare earnings tracker",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.ledger, cli.reporter))
	cmd.AddCommand(commands.NewImportCmd(cli.ledger))
	cmd.AddCommand(commands.NewPartnersCmd(cli.ledger))

	return cmd
}
