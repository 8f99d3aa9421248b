// Package main provides the CLI entry point for seatplan.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"seatplan/pkg/seatplan"
	"seatplan/pkg/seatplan/client"
	"seatplan/pkg/seatplan/export"
	"seatplan/pkg/seatplan/logging"
	"seatplan/pkg/seatplan/models"
	"seatplan/pkg/seatplan/render"
)

var (
	serverURL      string
	studentsPath   string
	classroomsPath string
	years          []string
	examDate       string
	pickedDate     string
	startTime      string
	endTime        string
	outputDir      string
	jsonOutput     bool
	pretty         bool
	timeout        time.Duration
	logLevel       string
	logFormat      string
	institution    string
	university     string
	docTitle       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seatplan",
		Short: "Generate exam seating arrangements",
		Long: `seatplan uploads student and classroom rosters to the seating
allocation service and renders the returned arrangement as a table
and an exportable spreadsheet document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:5000", "Allocation service base URL")
	rootCmd.Flags().StringVar(&studentsPath, "students", "", "Student roster CSV path")
	rootCmd.Flags().StringVar(&classroomsPath, "classrooms", "", "Classroom roster CSV path")
	rootCmd.Flags().StringSliceVar(&years, "years", nil, "Selected academic years (e.g. 1,2)")
	rootCmd.Flags().StringVar(&examDate, "date", "", "Exam date in DD/MM/YYYY form")
	rootCmd.Flags().StringVar(&pickedDate, "date-iso", "", "Exam date in YYYY-MM-DD form (ignored when --date is set)")
	rootCmd.Flags().StringVar(&startTime, "start", "", "Exam start time (HH:MM, 24-hour)")
	rootCmd.Flags().StringVar(&endTime, "end", "", "Exam end time (HH:MM, 24-hour)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for the exported document (default: no export)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the table as JSON instead of rendering it")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Allocation request timeout")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: console, json")
	rootCmd.Flags().StringVar(&institution, "institution", "", "First document header line")
	rootCmd.Flags().StringVar(&university, "university", "", "Second document header line")
	rootCmd.Flags().StringVar(&docTitle, "title", "", "Third document header line")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.ErrorBanner(seatplan.UserMessage(err)))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.NewLogger(logLevel, logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Validate roster paths the way the rest of the filesystem flags are
	// checked: given but missing is a usage error, not a transport one.
	for _, path := range []string{studentsPath, classroomsPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	header := export.DefaultHeader()
	if institution != "" {
		header.Institution = institution
	}
	if university != "" {
		header.University = university
	}
	if docTitle != "" {
		header.Title = docTitle
	}

	app := seatplan.New(client.New(serverURL, timeout, logger), header, logger)

	in := models.Inputs{
		StudentsPath:   studentsPath,
		ClassroomsPath: classroomsPath,
		Years:          years,
		ManualDate:     examDate,
		PickedDate:     pickedDate,
		StartTime:      startTime,
		EndTime:        endTime,
	}

	if _, err := app.Allocate(cmd.Context(), in); err != nil {
		return err
	}

	table, err := app.Table()
	if err != nil {
		return err
	}

	if jsonOutput {
		var data []byte
		if pretty {
			data, err = json.MarshalIndent(table, "", "  ")
		} else {
			data, err = json.Marshal(table)
		}
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(table.Terminal())
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path, err := app.Export(outputDir)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", path)
	}

	return nil
}
