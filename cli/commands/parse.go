package commands

import (
	"fmt"

	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/spf13/cobra"
)

// creates and returns the "parse" command
func parse() *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:   "parse <combo>...",
		Short: "Prints the canonical form of each key combination",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				k, err := combo.Parse(arg)

				if err != nil {
					return err
				}

				if fields {
					fmt.Fprintf(out, "%s\t%#v\n", k, k)
					continue
				}

				fmt.Fprintln(out, k)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&fields, "fields", "f", false, "also print the parsed fields as a Go literal")

	return cmd
}
