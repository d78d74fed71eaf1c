package cli

import (
	"github.com/spf13/cobra"

	"unitconvert/internal/render"
)

// ListOptions lists categories or the units of one category.
type ListOptions struct {
	*GlobalOptions

	Category string

	streams IOStreams
}

// NewCmdList creates the list subcommand.
func NewCmdList(global *GlobalOptions, streams IOStreams) *cobra.Command {
	o := &ListOptions{GlobalOptions: global, streams: streams}

	return &cobra.Command{
		Use:       "list [distance|mass|temperature]",
		Short:     "List unit categories or the units of one category",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"distance", "mass", "temperature"},
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.Category = args[0]
			}

			return o.Run()
		},
	}
}

// Run writes the listing.
func (o *ListOptions) Run() error {
	return render.List(o.streams.Out, o.Category, o.Output)
}
