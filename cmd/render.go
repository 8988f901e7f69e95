package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pders01/fna-context/internal/updater"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the status block without touching the target document",
	Long: `Gather the current stats and print the rendered FNA status block.

Useful to check a custom template before pointing update at it.

Examples:
  fna-context render
  fna-context render --config ./fna.toml`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report := updater.Gather(context.Background(), cfg, logger, time.Now())

	block, err := updater.RenderBlock(cfg, report)
	if err != nil {
		return err
	}

	fmt.Print(block)
	return nil
}
