package commands

import (
	"github.com/robgonnella/keycombo/internal/config"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Keymaps keymap.Service
	Config  *config.Config
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var logToFile bool

	cmd := &cobra.Command{
		Use:   "keycombo",
		Short: "Parse, format and validate key combinations",
		// main logs returned errors
		SilenceUsage:  true,
		SilenceErrors: true,
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			if logToFile {
				if _, err := logger.GlobalSetLogFile(viper.GetString("log-file")); err != nil {
					return err
				}
			}

			return nil
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "write logs to the log file instead of stderr")

	cmd.AddCommand(parse())
	cmd.AddCommand(format(props))
	cmd.AddCommand(check(props))
	cmd.AddCommand(press())
	cmd.AddCommand(gen())
	cmd.AddCommand(keymaps(props))
	cmd.AddCommand(configure(props))
	cmd.AddCommand(clear())
	cmd.AddCommand(version())

	return cmd
}
