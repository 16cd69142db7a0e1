package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adhavannn/ai-report-generator/pkg/services/report"
	"github.com/spf13/cobra"
)

type PDFCmd struct {
	output   string
	email    string
	pipeline *report.Controller
}

// NewPDFCmd runs the pipeline on a local file, writes the report PDF and
// optionally emails it.
func NewPDFCmd(pipeline *report.Controller) *cobra.Command {
	pc := &PDFCmd{pipeline: pipeline}
	cmd := &cobra.Command{
		Use:   "pdf <file>",
		Short: "Generate the business report PDF from a financial file",
		Args:  cobra.ExactArgs(1),
		RunE:  pc.run,
	}

	cmd.Flags().StringVarP(&pc.output, "output", "o", "business_report.pdf", "Path of the PDF to write")
	cmd.Flags().StringVar(&pc.email, "email", "", "Optional recipient to email the report to")

	return cmd
}

func (pc *PDFCmd) run(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ctx := cmd.Context()
	result, err := pc.pipeline.Run(ctx, f, filepath.Base(path))
	if err != nil {
		return err
	}

	_, pdfBytes, err := pc.pipeline.BuildPDF(result)
	if err != nil {
		return err
	}

	if err := os.WriteFile(pc.output, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pc.output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", pc.output)

	pc.pipeline.Deliver(ctx, result, pc.email, pdfBytes)
	for stage, warning := range result.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "warning (%s): %s\n", stage, warning)
	}

	return nil
}
