package main

import (
	"fmt"
	"os"

	"github.com/adhavannn/ai-report-generator/pkg/runtime/terminal"
	"github.com/adhavannn/ai-report-generator/pkg/services/chart"
	"github.com/adhavannn/ai-report-generator/pkg/services/columns"
	"github.com/adhavannn/ai-report-generator/pkg/services/config"
	"github.com/adhavannn/ai-report-generator/pkg/services/dataset"
	"github.com/adhavannn/ai-report-generator/pkg/services/delivery"
	"github.com/adhavannn/ai-report-generator/pkg/services/narrative"
	"github.com/adhavannn/ai-report-generator/pkg/services/pdf"
	"github.com/adhavannn/ai-report-generator/pkg/services/report"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry := columns.DefaultRegistry()
	if cfg.AliasesFile != "" {
		registry, err = columns.LoadRegistry(cfg.AliasesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	pipeline := report.NewController(report.Dependencies{
		Loader:   dataset.NewLoader(),
		Registry: registry,
		Chart:    chart.NewRenderer(cfg.CurrencySymbol),
		Narrative: narrative.NewGenerator(narrative.Settings{
			BaseURL:        cfg.Completion.BaseURL,
			APIKey:         cfg.Completion.APIKey,
			Model:          cfg.Completion.Model,
			MaxTokens:      cfg.Completion.MaxTokens,
			CurrencySymbol: cfg.CurrencySymbol,
		}),
		Builder: pdf.NewBuilder(cfg.CurrencySymbol),
		Sender: delivery.NewSender(delivery.Settings{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			Sender:   cfg.SMTP.Sender,
		}),
	})

	cli := terminal.NewCLI(terminal.Options{
		Pipeline:       pipeline,
		CurrencySymbol: cfg.CurrencySymbol,
		Output:         os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
