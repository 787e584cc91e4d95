package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fcfs-simulator/api"
	"fcfs-simulator/internal/metrics"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(rootOpts)
		},
	}

	cmd.Flags().Int("port", 9095, "port to listen on")
	cmd.Flags().StringP("file", "f", "", "yaml batch file served by /api/v1/samples")

	return cmd
}

func serve(opts *RootOptions) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return err
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(opts.Config, recorder), registry)
	addr := fmt.Sprintf(":%d", opts.Config.Port)
	log.WithField("addr", addr).Info("listening")
	return app.Listen(addr)
}
