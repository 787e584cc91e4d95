package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fcfs-simulator/config"
)

// RootOptions holds state shared by every command.
type RootOptions struct {
	ConfigFile string
	Viper      *viper.Viper
	Config     *config.SchedulerConfig
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Viper: viper.New()}

	cmd := &cobra.Command{
		Use:           "fcfs",
		Short:         "First-come-first-served cpu scheduling calculator",
		Long:          `fcfs computes response, finish, turnaround and waiting times of process batches under non-preemptive first-come-first-served scheduling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.bind(cmd); err != nil {
				return err
			}
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is ./config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	return cmd
}

// configKeys maps flags to the config keys they override.
var configKeys = map[string]string{
	"log-level": "log_level",
	"file":      "batches_file",
	"output":    "output",
	"width":     "column_width",
	"port":      "port",
}

// bind ties the flags of the command being executed to their config keys. Flags only
// win over the config file and environment when set on the command line.
func (o *RootOptions) bind(cmd *cobra.Command) error {
	var err error
	bindFlag := func(f *pflag.Flag) {
		key, ok := configKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = o.Viper.BindPFlag(key, f)
	}
	cmd.Flags().VisitAll(bindFlag)
	cmd.InheritedFlags().VisitAll(bindFlag)
	return err
}

func (o *RootOptions) load() error {
	cfg, err := config.Load(o.Viper, o.ConfigFile)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	o.Config = cfg
	return nil
}

func Execute() error {
	return NewRootCommand().Execute()
}
