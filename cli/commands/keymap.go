package commands

import (
	"fmt"

	"github.com/robgonnella/keycombo/internal/config"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "keymap" command and its sub-commands
func keymaps(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keymap",
		Short: "Manages keymaps stored in the database",
	}

	cmd.AddCommand(importKeymap(props))
	cmd.AddCommand(listKeymaps(props))
	cmd.AddCommand(showKeymap(props))
	cmd.AddCommand(deleteKeymap(props))

	return cmd
}

func importKeymap(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <keymap-file>...",
		Short: "Stores keymap files, replacing keymaps with the same name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			for _, path := range args {
				km, err := props.Keymaps.Import(path)

				if err != nil {
					return err
				}

				log.Info().Str("name", km.Name).Str("id", km.ID).Msg("imported keymap")
			}

			return nil
		},
	}

	return cmd
}

func listKeymaps(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists stored keymaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keymaps, err := props.Keymaps.GetAll()

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, km := range keymaps {
				fmt.Fprintf(out, "%s\t%d actions\t%s\n", km.Name, len(km.Bindings), km.ID)
			}

			return nil
		},
	}

	return cmd
}

func showKeymap(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Prints the bindings of a stored keymap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatConfig(config.FormatSettings{}, props.Config)

			if err != nil {
				return err
			}

			bindings, err := props.Keymaps.Resolve(args[0])

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, line := range keymap.HelpLines(bindings.KeyBindings(f)) {
				fmt.Fprintln(out, line)
			}

			return nil
		},
	}

	return cmd
}

func deleteKeymap(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>...",
		Short: "Removes stored keymaps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			for _, name := range args {
				km, err := props.Keymaps.GetByName(name)

				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}

				if err := props.Keymaps.Delete(km.ID); err != nil {
					return err
				}

				log.Info().Str("name", name).Msg("deleted keymap")
			}

			return nil
		},
	}

	return cmd
}
