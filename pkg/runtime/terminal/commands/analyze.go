package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adhavannn/ai-report-generator/pkg/runtime/terminal/export"
	"github.com/adhavannn/ai-report-generator/pkg/services/report"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	pipeline *report.Controller
	reporter *export.Reporter
}

// NewAnalyzeCmd runs the pipeline on a local file and prints the summary
// and grouped series as a text table.
func NewAnalyzeCmd(pipeline *report.Controller, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{pipeline: pipeline, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a financial CSV or spreadsheet file",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}
	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	result, err := ac.pipeline.Run(cmd.Context(), f, filepath.Base(path))
	if err != nil {
		return err
	}

	return ac.reporter.Handle(result)
}
