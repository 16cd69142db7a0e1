package main

import (
	"fmt"
	"net"
	"os"

	"github.com/adhavannn/ai-report-generator/pkg/server"
	"github.com/adhavannn/ai-report-generator/pkg/services/chart"
	"github.com/adhavannn/ai-report-generator/pkg/services/columns"
	"github.com/adhavannn/ai-report-generator/pkg/services/config"
	"github.com/adhavannn/ai-report-generator/pkg/services/dataset"
	"github.com/adhavannn/ai-report-generator/pkg/services/delivery"
	"github.com/adhavannn/ai-report-generator/pkg/services/narrative"
	"github.com/adhavannn/ai-report-generator/pkg/services/pdf"
	"github.com/adhavannn/ai-report-generator/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the AI business report generator",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	registry := columns.DefaultRegistry()
	if cfg.AliasesFile != "" {
		registry, err = columns.LoadRegistry(cfg.AliasesFile)
		if err != nil {
			return fmt.Errorf("failed to load column aliases: %w", err)
		}
		logger.Info().Str("path", cfg.AliasesFile).Msg("column aliases loaded")
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

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Pipeline:       pipeline,
			CurrencySymbol: cfg.CurrencySymbol,
		},
	})

	return api.Start()
}
