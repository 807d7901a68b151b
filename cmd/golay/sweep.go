package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	golay "github.com/Venemo/golay-fast"
	"github.com/Venemo/golay-fast/internal/sweep"
)

type sweepFlags struct {
	config      string
	maxErrors   int
	workers     int
	messages    int
	metricsFile string
	logLevel    string
	logFile     string
}

func newSweepCmd() *cobra.Command {
	var flags sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Decode every message with every error pattern of up to 4 bits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "", "YAML configuration file")
	f.IntVar(&flags.maxErrors, "max-errors", sweep.MaxErrorWeight, "highest number of bit errors per codeword")
	f.IntVar(&flags.workers, "workers", 0, "concurrent decoders (default all CPUs)")
	f.IntVar(&flags.messages, "messages", sweep.MaxMessages, "number of messages to sweep")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	f.StringVar(&flags.logLevel, "log-level", "info", "log level")
	f.StringVar(&flags.logFile, "log-file", "", "also log as JSON to <log-file>.info and <log-file>.warn")
	return cmd
}

// loadConfig reads the configuration file, if any, and applies the flags that
// were set explicitly on top of it.
func loadConfig(cmd *cobra.Command, flags *sweepFlags) (sweep.Config, error) {
	config := sweep.DefaultConfig()
	if flags.config != "" {
		var err error
		if config, err = sweep.LoadConfig(flags.config); err != nil {
			return config, err
		}
	}

	f := cmd.Flags()
	if f.Changed("max-errors") {
		config.MaxErrors = flags.maxErrors
	}
	if f.Changed("workers") {
		config.Workers = flags.workers
	}
	if f.Changed("messages") {
		config.Messages = flags.messages
	}
	if f.Changed("metrics-file") {
		config.MetricsFile = flags.metricsFile
	}
	if f.Changed("log-level") {
		config.LogLevel = flags.logLevel
	}
	return config, config.Validate()
}

func newLogger(out io.Writer, level logrus.Level, logFile string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
	})
	if logFile != "" {
		logger.AddHook(lfshook.NewHook(lfshook.PathMap{
			logrus.InfoLevel: logFile + ".info",
			logrus.WarnLevel: logFile + ".warn",
		}, &logrus.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		}))
	}
	return logger
}

func runSweep(cmd *cobra.Command, flags *sweepFlags) error {
	config, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	level, _ := logrus.ParseLevel(config.LogLevel)
	logger := newLogger(cmd.ErrOrStderr(), level, flags.logFile)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := &sweep.Runner{
		Codec:       golay.Codec{},
		ErrorResult: golay.ErrorResult,
		Config:      config,
		Logger:      logger.WithField("name", "sweep"),
		Metrics:     sweep.NewMetrics(),
	}
	report, err := runner.Run(ctx)
	if report != nil {
		printReport(cmd.OutOrStdout(), report)
	}
	if config.MetricsFile != "" {
		if werr := runner.Metrics.WriteToTextfile(config.MetricsFile); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func printReport(out io.Writer, report *sweep.Report) {
	fmt.Fprintf(out, "Encode: %d inputs, took %v\n", report.Messages, report.Encode)
	for _, w := range report.Weights {
		fmt.Fprintf(out, "Decode: %d-bit errors: took %v, total: %d fixed: %d (%.2f%%) detected: %d failed: %d\n",
			w.Weight, w.Elapsed, w.Total, w.Fixed, w.FixedRatio()*100, w.Detected, w.Failed)
	}
}
