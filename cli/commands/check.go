package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/robgonnella/keycombo/internal/config"
	"github.com/robgonnella/keycombo/internal/event"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/spf13/cobra"
)

// ErrConflicts returned by "check --strict" when bindings conflict
var ErrConflicts = errors.New("keymap has conflicting bindings")

// creates and returns the "check" command
func check(props *CommandProps) *cobra.Command {
	var strict bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <keymap-file>",
		Short: "Validates a keymap file and reports conflicting bindings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatConfig(config.FormatSettings{}, props.Config)

			if err != nil {
				return err
			}

			repo := keymap.NewFileRepo(args[0])

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()

				return watchKeymap(ctx, cmd.OutOrStdout(), repo, f)
			}

			km, err := repo.Load()

			if err != nil {
				return err
			}

			bindings, err := keymap.Compile(km)

			if err != nil {
				return err
			}

			if n := report(cmd.OutOrStdout(), bindings, f); n > 0 && strict {
				return fmt.Errorf("%w: %d", ErrConflicts, n)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when bindings conflict")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check the file whenever it changes")

	return cmd
}

// report prints the state of bindings and returns the number of conflicts
func report(out io.Writer, bindings *keymap.Bindings, f combo.FormatConfig) int {
	conflicts := keymap.DetectConflicts(bindings)

	for _, c := range conflicts {
		fmt.Fprintln(out, c.Message(f))
	}

	fmt.Fprintf(
		out,
		"%s: %d actions, %d key combinations, %d conflicts\n",
		bindings.Name(),
		len(bindings.Actions()),
		bindings.Len(),
		len(conflicts),
	)

	return len(conflicts)
}

// watchKeymap reports every reload of the keymap file until ctx is done
func watchKeymap(ctx context.Context, out io.Writer, repo *keymap.FileRepo, f combo.FormatConfig) error {
	log := logger.New()

	manager := event.NewEventManager()

	reloads := make(chan event.Event)
	errs := make(chan event.Event)

	manager.RegisterListener(event.BindingsEventType, reloads)
	manager.RegisterListener(event.ErrorEventType, errs)

	watcher := keymap.NewWatcher(repo, manager.SetBindings, manager.ReportError)

	bindings, err := watcher.Start(ctx)

	if err != nil {
		return err
	}

	report(out, bindings, f)

	log.Info().Str("file", repo.Path()).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-reloads:
			if b, ok := evt.Payload.(*keymap.Bindings); ok {
				report(out, b, f)
			}
		case evt := <-errs:
			if err, ok := evt.Payload.(error); ok {
				fmt.Fprintln(out, err)
			}
		}
	}
}
