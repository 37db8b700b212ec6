package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/robgonnella/keycombo/internal/config"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// creates and returns the "config" command and its sub-commands
func configure(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Shows or initializes the config file",
	}

	cmd.AddCommand(showConfig(props))
	cmd.AddCommand(initConfig())

	return cmd
}

func showConfig(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Prints the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := props.Config

			if conf == nil {
				conf = config.Default()
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)

			if err := encoder.Encode(conf); err != nil {
				return err
			}

			return encoder.Close()
		},
	}

	return cmd
}

func initConfig() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Writes the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			configFile := viper.GetString("config-file")

			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Write(config.Default()); err != nil {
				return err
			}

			log.Info().Str("file", configFile).Msg("wrote config file")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}
