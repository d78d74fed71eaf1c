package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitconvert/internal/convert"
	"unitconvert/internal/expression"
	"unitconvert/internal/render"
)

var expressionExample = `  # convert with an arrow
  unitconvert expression --expr "10C -> F"

  # the expression may also be given as arguments
  unitconvert expression 3 miles to km`

// ExpressionOptions converts a free-text expression.
type ExpressionOptions struct {
	*GlobalOptions

	Expr string

	streams IOStreams
}

// NewCmdExpression creates the expression subcommand.
func NewCmdExpression(global *GlobalOptions, streams IOStreams) *cobra.Command {
	o := &ExpressionOptions{GlobalOptions: global, streams: streams}

	cmd := &cobra.Command{
		Use:     "expression [--expr] EXPRESSION",
		Aliases: []string{"expr"},
		Short:   "Convert an expression like '10C -> F'",
		Example: expressionExample,
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}

			return o.Run()
		},
	}

	cmd.Flags().StringVarP(&o.Expr, "expr", "e", o.Expr, "expression to convert, e.g. '10C -> F'")

	return cmd
}

// Complete takes the expression from the positional arguments when --expr
// is not set.
func (o *ExpressionOptions) Complete(args []string) error {
	if o.Expr == "" {
		o.Expr = strings.Join(args, " ")
	}

	if strings.TrimSpace(o.Expr) == "" {
		return errors.New("an expression is required, e.g. '10C -> F'")
	}

	return nil
}

// Run parses and converts the expression.
func (o *ExpressionOptions) Run() error {
	expr, err := expression.Parse(o.Expr)
	if err != nil {
		o.Logger.Debug("expression rejected", zap.String("expr", o.Expr), zap.Error(err))
		return err
	}

	o.Logger.Debug("parsed expression", zap.Stringer("expression", expr))
	reportWarnings(o.Logger, o.streams.ErrOut, expr.Warnings)

	r, err := convert.Run(expr.Value, expr.From, expr.To)
	if err != nil {
		return err
	}

	return render.Render(o.streams.Out, r, o.Output, o.Precision)
}
