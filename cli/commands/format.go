package commands

import (
	"fmt"

	"github.com/robgonnella/keycombo/internal/config"
	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/spf13/cobra"
)

// creates and returns the "format" command
func format(props *CommandProps) *cobra.Command {
	settings := config.FormatSettings{}

	cmd := &cobra.Command{
		Use:   "format <combo>...",
		Short: "Renders each key combination with the configured format",
		Long: "Renders each key combination with the configured format. " +
			"Flags override the format section of the config file.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := props.Config

			if cmd.Flags().Changed("implicit-shift") {
				conf = withImplicitShift(conf, settings.ImplicitShift)
			}

			f, err := formatConfig(settings, conf)

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, arg := range args {
				k, err := combo.Parse(arg)

				if err != nil {
					return err
				}

				fmt.Fprintln(out, f.Format(k))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&settings.Control, "control", "", "label for the control modifier")
	cmd.Flags().StringVar(&settings.Alt, "alt", "", "label for the alt modifier")
	cmd.Flags().StringVar(&settings.Shift, "shift", "", "label for the shift modifier")
	cmd.Flags().StringVar(&settings.Super, "super", "", "label for the super modifier")
	cmd.Flags().StringVar(&settings.Separator, "separator", "", "text written after word labels")
	cmd.Flags().BoolVar(&settings.ImplicitShift, "implicit-shift", false, "render shift on letters as an uppercase letter")
	cmd.Flags().StringVar(&settings.Case, "case", "", "key name case: title, lower or upper")

	return cmd
}

// formatConfig merges settings over the user config
func formatConfig(settings config.FormatSettings, conf *config.Config) (combo.FormatConfig, error) {
	if conf == nil {
		conf = config.Default()
	}

	merged, err := settings.Merge(conf.Format)

	if err != nil {
		return combo.FormatConfig{}, err
	}

	return merged.FormatConfig()
}

// withImplicitShift returns a copy of conf with implicit shift set to
// value. The merge treats false as unset, so an explicit
// --implicit-shift=false has to reach the fallback instead.
func withImplicitShift(conf *config.Config, value bool) *config.Config {
	if conf == nil {
		conf = config.Default()
	}

	copied := *conf
	copied.Format.ImplicitShift = value

	return &copied
}
