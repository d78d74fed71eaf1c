package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconvert/internal/convert"
	"unitconvert/internal/render"
)

var convertExample = `  # convert 2 meters to feet
  unitconvert convert --from m --to ft 2

  # negative values follow a double dash
  unitconvert convert --from c --to f -- -40`

// ConvertOptions converts one value given as flags.
type ConvertOptions struct {
	*GlobalOptions

	From  string
	To    string
	Value float64

	streams IOStreams
}

// NewCmdConvert creates the convert subcommand.
func NewCmdConvert(global *GlobalOptions, streams IOStreams) *cobra.Command {
	o := &ConvertOptions{GlobalOptions: global, streams: streams}

	cmd := &cobra.Command{
		Use:     "convert --from UNIT --to UNIT VALUE",
		Short:   "Convert a value between two units",
		Example: convertExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}

			return o.Run()
		},
	}

	cmd.Flags().StringVarP(&o.From, "from", "f", o.From, "source unit (e.g. m, kg, C)")
	cmd.Flags().StringVarP(&o.To, "to", "t", o.To, "target unit (e.g. ft, lb, F)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// Complete parses the positional value.
func (o *ConvertOptions) Complete(args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value '%s': must be a number", args[0])
	}

	o.Value = v

	return nil
}

// Run converts the value and writes the result.
func (o *ConvertOptions) Run() error {
	o.Logger.Debug("converting",
		zap.Float64("value", o.Value),
		zap.String("from", o.From),
		zap.String("to", o.To))

	r, err := convert.Run(o.Value, o.From, o.To)
	if err != nil {
		o.Logger.Debug("conversion rejected", zap.Error(err))
		return err
	}

	o.Logger.Debug("resolved converter", zap.Stringer("category", r.Category))

	return render.Render(o.streams.Out, r, o.Output, o.Precision)
}
