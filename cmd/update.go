package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pders01/fna-context/internal/models"
	"github.com/pders01/fna-context/internal/updater"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var updateDryRun bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh the FNA section of the target document",
	Long: `Gather the current stats, render the status block and replace the FNA
section of the target document with it.

The section starts at the configured marker and ends right before the
next section marker ("---" rule or another "- if i type" entry), or at
the end of the file. Nothing is written when the marker is missing.

Examples:
  fna-context update
  fna-context update --dry-run
  fna-context update --config ./fna.toml`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Print the updated document instead of writing it")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.With(zap.String("run_id", uuid.NewString()))

	res, err := updater.Run(context.Background(), cfg, log, updater.Options{DryRun: updateDryRun})
	if err != nil {
		return err
	}

	switch res.Outcome {
	case models.OutcomeSectionNotFound:
		fmt.Printf("FNA section not found in %s\n", cfg.DocumentPath)
		return nil
	case models.OutcomeDryRun:
		fmt.Print(res.Document)
		return nil
	}

	fmt.Printf("[%s] FNA context %s - Server: %s, Meals: %d\n",
		res.Report.GeneratedAt.Format("2006-01-02 15:04"),
		res.Outcome,
		res.Report.Server,
		res.Report.Stats.TotalMeals)

	return nil
}
