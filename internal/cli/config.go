package cli

import (
	"github.com/spf13/cobra"

	"unitconvert/internal/config"
)

var configExample = `  # show the settings in effect, flags applied
  unitconvert config --precision 3

  # start a config file from the defaults
  unitconvert config > ~/.config/unitconvert/config.yaml`

// NewCmdConfig creates the config subcommand.
func NewCmdConfig(global *GlobalOptions, streams IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Print the effective configuration as YAML",
		Example: configExample,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			data, err := config.Marshal(global.Config)
			if err != nil {
				return err
			}

			_, err = streams.Out.Write(data)

			return err
		},
	}
}
