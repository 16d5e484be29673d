package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajitpratap0/objectpool/internal/workload"
	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/logger"
)

var version = "0.1.0"

// envPrefix is the prefix for environment overrides, e.g. OBJPOOL_WORKLOAD_BURST.
const envPrefix = "OBJPOOL"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "objpool",
		Short: "objpool - drive workloads against a recycling object pool",
		Long: `objpool runs acquire/release workloads against a single-threaded object pool
and reports how many instances were constructed, reused and torn down.`,
		SilenceUsage: true,
	}

	root.AddCommand(newVersionCommand())
	root.AddCommand(newRunCommand(viper.New()))
	root.AddCommand(newInitConfigCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "objpool v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload",
		Long: `Run a workload against a fresh pool and print a JSON report.
Values come from the config file, then OBJPOOL_WORKLOAD_* environment variables, then flags.

Example:
  objpool run --config workload.yaml --burst 64 --release-order fifo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(v)
			if err != nil {
				return err
			}

			if err := logger.Init(logger.Config{
				Level:       cfg.Observability.LogLevel,
				Encoding:    cfg.Observability.LogEncoding,
				Development: cfg.Observability.Development,
			}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = context.WithValue(ctx, logger.RunIDKey, uuid.NewString())

			return runWorkload(ctx, cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to workload configuration YAML file (optional)")
	flags.Int("rounds", 0, "Number of acquire/release rounds")
	flags.Int("burst", 0, "Handles held at once within a round")
	flags.Int("payload-size", 0, "Bytes written into each buffer per use")
	flags.String("release-order", "", "Release order within a round (lifo, fifo)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	bindings := map[string]string{
		"config":                  "config",
		"workload.rounds":         "rounds",
		"workload.burst":          "burst",
		"workload.payload_size":   "payload-size",
		"workload.release_order":  "release-order",
		"observability.log_level": "log-level",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return cmd
}

func newInitConfigCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default workload configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.NewWorkloadConfig(name)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "workload", "Run name written into the file")
	return cmd
}

// resolveConfig builds the workload config from the optional file, then
// applies every field that was set by env or flag, zero values included.
func resolveConfig(v *viper.Viper) (*config.WorkloadConfig, error) {
	cfg := config.NewWorkloadConfig("workload")
	if path := v.GetString("config"); path != "" {
		loaded, err := config.LoadWorkload(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v.IsSet("workload.rounds") {
		cfg.Workload.Rounds = v.GetInt("workload.rounds")
	}
	if v.IsSet("workload.burst") {
		cfg.Workload.Burst = v.GetInt("workload.burst")
	}
	if v.IsSet("workload.payload_size") {
		cfg.Workload.PayloadSize = v.GetInt("workload.payload_size")
	}
	if v.IsSet("workload.release_order") {
		cfg.Workload.ReleaseOrder = config.ReleaseOrder(strings.ToLower(v.GetString("workload.release_order")))
	}
	if v.IsSet("observability.log_level") {
		cfg.Observability.LogLevel = v.GetString("observability.log_level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runWorkload runs cfg on the global logger and prints the report to out.
func runWorkload(ctx context.Context, cfg *config.WorkloadConfig, out io.Writer) error {
	report, runErr := workload.Run(ctx, cfg, nil)
	if report == nil {
		return runErr
	}

	data, err := report.JSON()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return err
	}
	return runErr
}
