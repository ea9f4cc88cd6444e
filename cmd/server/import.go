package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/metrics"
	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile       string
	importPlantation string
	nameAsID         bool
	strictMode       bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import workers and fields from a JSON file",
	Long: `Import a plantation roster from a JSON file.

Expected JSON format:
{
  "plantation_id": "estate-1",
  "workers": [
    {"id": "w1", "name": "Kamala", "experience": "12 years", "age": 44, "gender": "Female"}
  ],
  "fields": [
    {"name": "Upper Division", "slope": 18, "max_workers": 6, "location": "North"}
  ]
}

By default invalid entries are skipped and reported.
Use --strict to fail on the first validation error instead.`,
	Example: `  assistea import -f roster.json
  assistea import -f roster.json --plantation estate-2 --name-as-id
  assistea import -f roster.json --strict`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context())
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().StringVar(&importPlantation, "plantation", "", "Plantation ID, overrides the file's plantation_id")
	importCmd.Flags().BoolVar(&nameAsID, "name-as-id", false, "Use a field's name as its id when no id is given")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on any validation error")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(ctx context.Context) error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var roster services.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	if importPlantation != "" {
		roster.PlantationID = importPlantation
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

	result, err := a.roster.ImportRoster(ctx, roster, services.ImportOptions{
		UseNameAsID: nameAsID,
		Strict:      strictMode,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	for _, s := range result.Skipped {
		logger.Warn("skipped entry", zap.String("reason", s))
	}
	fmt.Printf("Imported %d workers and %d fields into %s (%d skipped)\n",
		result.WorkersCreated, result.FieldsCreated, roster.PlantationID, len(result.Skipped))
	return nil
}
