package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/metrics"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/scheduler"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	genPlantation string
	genDate       string
	genTier       string
	genOutput     string
	genXLSX       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store the schedule of a plantation-day",
	Long: `Generate the worker to field schedule for one plantation and date.

The schedule is stored (replacing the active schedule of that day) and
printed. If storing fails the generated schedule is still printed and the
command exits with an error.`,
	Example: `  assistea generate --plantation estate-1
  assistea generate --plantation estate-1 --date 2026-10-18 --tier High --output yaml
  assistea generate --plantation estate-1 --xlsx schedule.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genPlantation, "plantation", "p", "", "Plantation ID (required)")
	generateCmd.Flags().StringVarP(&genDate, "date", "d", "", "Schedule date YYYY-MM-DD (default today)")
	generateCmd.Flags().StringVarP(&genTier, "tier", "t", "", "Quality tier: High, Medium or Low (default from DEFAULT_QUALITY_TIER)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "json", "Output format: json or yaml")
	generateCmd.Flags().StringVar(&genXLSX, "xlsx", "", "Also write the schedule to this .xlsx file")
	_ = generateCmd.MarkFlagRequired("plantation")
}

func runGenerate(ctx context.Context, out io.Writer) error {
	if genOutput != "json" && genOutput != "yaml" {
		return fmt.Errorf("unknown output format %q", genOutput)
	}
	if genDate == "" {
		genDate = time.Now().Format(models.DateLayout)
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a, err := newApp(cfg, logger, metrics.NewNop())
	if err != nil {
		return err
	}
	defer a.close()

	schedule, genErr := a.schedules.Generate(ctx, services.GenerateRequest{
		PlantationID: genPlantation,
		Date:         genDate,
		QualityTier:  models.QualityTier(genTier),
	})
	var persistErr *services.PersistenceError
	if genErr != nil && !errors.As(genErr, &persistErr) {
		return genErr
	}

	if err := printSchedule(out, schedule, genOutput); err != nil {
		return err
	}

	if genXLSX != "" {
		if err := writeXLSX(genXLSX, schedule); err != nil {
			return err
		}
		logger.Info("schedule exported", zap.String("path", genXLSX))
	}
	return genErr
}

func printSchedule(out io.Writer, schedule *scheduler.AssignmentSchedule, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(schedule); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(schedule)
}

func writeXLSX(path string, schedule *scheduler.AssignmentSchedule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return services.WriteScheduleXLSX(f, schedule)
}
