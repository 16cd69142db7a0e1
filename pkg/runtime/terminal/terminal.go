package terminal

import (
	"io"
	"os"

	"github.com/adhavannn/ai-report-generator/pkg/runtime/terminal/commands"
	"github.com/adhavannn/ai-report-generator/pkg/runtime/terminal/export"
	"github.com/adhavannn/ai-report-generator/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	pipeline *report.Controller
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Pipeline       *report.Controller
	CurrencySymbol string
	Output         io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		pipeline: opts.Pipeline,
		reporter: export.NewReporter(opts.Output, opts.CurrencySymbol),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "AI business report generator",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.pipeline, cli.reporter))
	cmd.AddCommand(commands.NewPDFCmd(cli.pipeline))

	return cmd
}
