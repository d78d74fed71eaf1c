// Package cli wires the conversion engine to the unitconvert command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"unitconvert/internal/config"
	"unitconvert/internal/diagnostic"
	"unitconvert/internal/logging"
)

// IOStreams holds the standard streams of a command.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// GlobalOptions are the flags shared by every subcommand, resolved against
// the configuration file.
type GlobalOptions struct {
	ConfigPath string
	Output     string
	Precision  int
	LogLevel   string

	// Config is the loaded configuration with the flag values applied.
	Config *config.Config
	Logger *zap.Logger
}

// AddFlags registers the global flags on fs.
func (o *GlobalOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "path to a YAML config file (default: user config dir)")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "output format. One of: text, yaml, json.")
	fs.IntVar(&o.Precision, "precision", o.Precision, "digits after the decimal point in results, -1 for the shortest exact value")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level: debug, info, warn, error")
}

// Complete loads the configuration file and fills every option the user
// did not set on the command line.
func (o *GlobalOptions) Complete(fs *pflag.FlagSet) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	if fs.Changed("output") {
		cfg.Output = o.Output
	}

	if fs.Changed("precision") {
		cfg.Precision = &o.Precision
	}

	if fs.Changed("log-level") {
		cfg.Log.Level = o.LogLevel
	}

	o.Output = cfg.Output
	o.Precision = *cfg.Precision
	o.LogLevel = cfg.Log.Level
	o.Config = cfg

	return nil
}

// Validate checks the resolved options.
func (o *GlobalOptions) Validate() error {
	if err := config.ValidateOutput(o.Output); err != nil {
		return err
	}

	if o.Precision < config.ShortestPrecision {
		return fmt.Errorf("invalid precision %d: must be %d or greater", o.Precision, config.ShortestPrecision)
	}

	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return err
	}

	return nil
}

// Run builds the logger once the options are valid.
func (o *GlobalOptions) Run(errOut io.Writer) error {
	logger, err := logging.New(errOut, o.Config.Log)
	if err != nil {
		return err
	}

	o.Logger = logger

	return nil
}

// NewRootCommand builds the unitconvert command tree.
func NewRootCommand(streams IOStreams) *cobra.Command {
	opts := &GlobalOptions{
		Output:    config.OutputText,
		Precision: config.ShortestPrecision,
	}

	cmd := &cobra.Command{
		Use:   "unitconvert",
		Short: "Convert values between units of distance, mass and temperature",
		Long: "unitconvert converts a value between two units of the same category " +
			"(distance, mass or temperature), given either as flags or as an expression like '10C -> F'.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if err := opts.Complete(c.Flags()); err != nil {
				return err
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			return opts.Run(streams.ErrOut)
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		NewCmdConvert(opts, streams),
		NewCmdExpression(opts, streams),
		NewCmdList(opts, streams),
		NewCmdInteractive(opts, streams),
		NewCmdConfig(opts, streams),
	)

	return cmd
}

// reportWarnings prints parser warnings to errOut.
func reportWarnings(logger *zap.Logger, errOut io.Writer, warnings []diagnostic.Diagnostic) {
	if len(warnings) == 0 {
		return
	}

	logger.Debug("expression warnings", zap.Stringers("warnings", warnings))

	for _, w := range warnings {
		fmt.Fprintf(errOut, "Warning: %s\n", w.Message)
	}
}

// Execute runs the command line args and returns the process exit status.
// Errors are printed to streams.ErrOut.
func Execute(ctx context.Context, args []string, streams IOStreams) int {
	cmd := NewRootCommand(streams)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(streams.ErrOut, "Error: %v\n", err)
		return 1
	}

	return 0
}
