package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/zikhan/grains/actors"
	"github.com/zikhan/grains/internal/config"
	"github.com/zikhan/grains/internal/samples"
)

const (
	sinkConsole = "console"
	sinkLog     = "log"
)

type sampleFunc func(ctx context.Context, runtime *actors.Runtime, out io.Writer) error

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "grains",
		Short:         "Run the virtual actor samples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().String("sink", sinkConsole, "where actors report side effects (console|log)")

	root.AddCommand(
		newSampleCommand("hello", "Greet and whisper between greeters", samples.HelloWorld),
		newSampleCommand("state", "Race producers and consumers against todo lists", samples.UnderstandingState),
		newConfigCommand(),
	)
	return root
}

func newSampleCommand(use string, short string, run sampleFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			sinkName, err := cmd.Flags().GetString("sink")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sink, err := newSink(sinkName, out, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runtime, err := actors.NewRuntime(ctx, cfg.RuntimeOptions(logger, sink, prometheus.DefaultRegisterer))
			if err != nil {
				return err
			}
			runErr := run(ctx, runtime, out)
			if err := runtime.Shutdown(context.Background()); err != nil && runErr == nil {
				runErr = err
			}
			return runErr
		},
	}
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			dump, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)
			return err
		},
	}
}

func newSink(name string, out io.Writer, logger logr.Logger) (actors.Sink, error) {
	switch name {
	case sinkConsole:
		return actors.NewWriterSink(out), nil
	case sinkLog:
		return actors.LogSink{Logger: logger.WithName("sink")}, nil
	default:
		return nil, fmt.Errorf("unknown sink %q, want %q or %q", name, sinkConsole, sinkLog)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "grains:", err)
		stop()
		os.Exit(1)
	}
}
