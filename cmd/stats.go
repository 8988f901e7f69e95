package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/fna-context/internal/models"
	"github.com/pders01/fna-context/internal/updater"
	"github.com/spf13/cobra"
)

var (
	statsJSON bool
	statsToon bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the facts that go into the status block",
	Long: `Display the live facts gathered for the FNA status block:
  - Server status from the health check
  - Total meals and meals logged today
  - Profile name and daily calorie target
  - Number of API routes declared in server.js

Examples:
  fna-context stats
  fna-context stats --json
  fna-context stats --toon`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsToon, "toon", false, "Output in LLM-friendly toon format")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report := updater.Gather(context.Background(), cfg, logger, time.Now())

	// Output JSON if requested
	if statsJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	// Output Toon if requested
	if statsToon {
		output, err := gotoon.Encode(toToon(report))
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	printReport(report)
	return nil
}

type toonReport struct {
	Server        string `json:"server"`
	TotalMeals    int    `json:"total_meals"`
	MealsToday    int    `json:"meals_today"`
	ProfileExists bool   `json:"profile_exists"`
	ProfileName   string `json:"profile_name"`
	CalTarget     int    `json:"cal_target"`
	Endpoints     int    `json:"endpoints"`
	GeneratedAt   string `json:"generated_at"`
}

// toToon flattens the report so the toon encoder only sees scalar fields
func toToon(r models.Report) toonReport {
	return toonReport{
		Server:        string(r.Server),
		TotalMeals:    r.Stats.TotalMeals,
		MealsToday:    r.Stats.MealsToday,
		ProfileExists: r.Stats.ProfileExists,
		ProfileName:   r.Stats.ProfileName,
		CalTarget:     r.Stats.CalTarget,
		Endpoints:     r.Endpoints,
		GeneratedAt:   r.GeneratedAt.Format(time.RFC3339),
	}
}

func printReport(r models.Report) {
	fmt.Println("FNA Statistics")
	fmt.Println("━━━━━━━━━━━━━━")
	fmt.Println()

	fmt.Printf("Server:          %s\n", r.Server)
	fmt.Printf("Total meals:     %d\n", r.Stats.TotalMeals)
	fmt.Printf("Meals today:     %d\n", r.Stats.MealsToday)
	if r.Stats.ProfileExists && r.Stats.ProfileName != "" {
		fmt.Printf("Profile:         %s\n", r.Stats.ProfileName)
	} else {
		fmt.Printf("Profile:         %s\n", r.Stats.ProfileConfigured())
	}
	fmt.Printf("Calorie target:  %d\n", r.Stats.CalTarget)
	fmt.Printf("API endpoints:   %d\n", r.Endpoints)
	fmt.Println()
	fmt.Printf("Gathered at %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
}
