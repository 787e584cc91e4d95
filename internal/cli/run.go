package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fcfs-simulator/internal/report"
	"fcfs-simulator/internal/responses"
	"fcfs-simulator/internal/samples"
	"fcfs-simulator/internal/schedulers"
)

func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule the sample batches, or those of a batch file, and print their reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatches(rootOpts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "", "yaml batch file (default: built in samples)")
	cmd.Flags().StringP("output", "o", "text", "output format: text, table or json")
	cmd.Flags().Int("width", 10, "column width of text output")

	return cmd
}

func runBatches(opts *RootOptions, w io.Writer) error {
	cfg := opts.Config

	batches := samples.Default()
	if cfg.BatchesFile != "" {
		loaded, err := samples.Load(cfg.BatchesFile)
		if err != nil {
			return err
		}
		batches = loaded
	}

	if err := report.CheckFormat(cfg.Output); err != nil {
		return err
	}
	jsonOutput := cfg.Output == report.FormatJSON

	if !jsonOutput {
		if _, err := fmt.Fprint(w, "FCFS Simulator\n\n"); err != nil {
			return err
		}
	}
	result := make([]responses.ScheduleResponse, 0, len(batches))
	for _, batch := range batches {
		log.WithField("batch", batch.Name).Debug("scheduling batch")
		reports, err := schedulers.ScheduleFirstComeFirstServe(batch.ToProcesses())
		if err != nil {
			return fmt.Errorf("batch %s: %w", batch.Name, err)
		}

		if jsonOutput {
			response := schedulers.Analyze(reports)
			response.Name = batch.Name
			result = append(result, response)
			continue
		}
		if err := report.Write(w, cfg.Output, reports, cfg.ColumnWidth); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if jsonOutput {
		return report.WriteJSON(w, result)
	}
	return nil
}
