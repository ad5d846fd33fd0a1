package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amitsingh771/Numerology/config"
	reportController "github.com/amitsingh771/Numerology/internal/controllers/report"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/logger"
	. "github.com/amitsingh771/Numerology/internal/models"
	"github.com/amitsingh771/Numerology/internal/render"
	"github.com/amitsingh771/Numerology/internal/repositories"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	asJSON       bool
	fortunesPath string
	width        int

	request ReportRequest
)

var rootCmd = &cobra.Command{
	Use:   "numerology",
	Short: "Numerology report generator",
	Long: `Derives driver and conductor numbers from a date of birth (YYYY-MM-DD),
resolves the attribute profile and combination fortune, and prints a report.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(cmd.ErrOrStderr(), false, level)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a full report",
	Example: `  numerology report --name "Asha Rao" --email asha@example.com \
    --mobile 9876543210 --dob 1991-01-19`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var numbersCmd = &cobra.Command{
	Use:   "numbers [dob]",
	Short: "Print driver and conductor numbers for a date of birth",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumbers,
}

var profileCmd = &cobra.Command{
	Use:   "profile [driver]",
	Short: "Print the attribute profile for a driver number",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of formatted text")

	reportCmd.Flags().StringVar(&request.FullName, "name", "", "full name")
	reportCmd.Flags().StringVar(&request.Email, "email", "", "email address")
	reportCmd.Flags().StringVar(&request.Mobile, "mobile", "", "mobile number")
	reportCmd.Flags().StringVar(&request.Dob, "dob", "", "date of birth, YYYY-MM-DD")
	reportCmd.Flags().StringVar(&fortunesPath, "fortunes", "", "combination fortune JSON file (overrides FORTUNE_TABLE_PATH)")
	reportCmd.Flags().IntVar(&width, "width", render.DefaultWidth, "report width in columns")

	rootCmd.AddCommand(reportCmd, numbersCmd, profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newController(ctx context.Context) (*reportController.ReportController, func(), error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if fortunesPath != "" {
		cfg.FortuneSource = config.FortuneSourceFile
		cfg.FortuneTablePath = fortunesPath
	}

	var db database.DB
	if cfg.FortuneSource == config.FortuneSourceSQLite {
		cfg.DatabaseCacheAddress = ""
		if db, err = database.New(cfg); err != nil {
			return nil, nil, err
		}
	}

	fortunes := repositories.NewFortune(ctx, cfg, db)
	return reportController.New(fortunes), func() { _ = db.Close() }, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	controller, closeDB, err := newController(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	report, err := controller.Generate(cmd.Context(), request)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, report)
	}
	return render.New(out, width).Render(out, report)
}

func runNumbers(cmd *cobra.Command, args []string) error {
	preview := reportController.New(nil).Preview(args[0])

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, preview)
	}

	if !preview.Valid {
		_, err := fmt.Fprintf(out, "%q is not a usable date of birth\n", preview.Dob)
		return err
	}

	_, err := fmt.Fprintf(out, "Date of birth:  %s\nDriver:         %d\nConductor:      %d\nRuling planet:  %s\n",
		preview.LongDob, *preview.Driver, *preview.Conductor, preview.Profile.RulingPlanet)
	return err
}

func runProfile(cmd *cobra.Command, args []string) error {
	driver, err := strconv.Atoi(args[0])
	if err != nil || driver < 1 || driver > 9 {
		return fmt.Errorf("driver must be a number from 1 to 9, got %q", args[0])
	}

	return writeJSON(cmd.OutOrStdout(), reportController.New(nil).Profile(driver))
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
