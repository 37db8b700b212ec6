package commands

import (
	"path/filepath"

	"github.com/robgonnella/keycombo/internal/generate"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "gen" command
func gen() *cobra.Command {
	var outFile string
	var pkg string

	cmd := &cobra.Command{
		Use:   "gen <keymap-file>",
		Short: "Generates Go key combination variables from a keymap file",
		Long: "Generates Go key combination variables from a keymap file. " +
			"Use it from a go:generate directive so that invalid bindings " +
			"fail the build.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			km, err := keymap.NewFileRepo(args[0]).Load()

			if err != nil {
				return err
			}

			data, err := generate.BuildData(km, pkg, filepath.Base(args[0]))

			if err != nil {
				return err
			}

			generator := generate.NewTemplateGenerator(outFile)

			if err := generator.Generate(data); err != nil {
				return err
			}

			log.Info().Str("file", outFile).Int("actions", len(data.Actions)).Msg("generated keymap")

			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "keys_gen.go", "path of the generated file")
	cmd.Flags().StringVarP(&pkg, "package", "p", "keys", "package name of the generated file")

	return cmd
}
