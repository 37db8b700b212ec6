package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robgonnella/keycombo/internal/event"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/spf13/cobra"
)

// creates and returns the "press" command
func press() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press <keymap-file> <combo>...",
		Short: "Prints the actions each key press would trigger",
		Long: "Simulates terminal key presses against a keymap file. Each " +
			"combination is converted to the key event a terminal reports " +
			"and dispatched through the keymap.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := keymap.NewFileRepo(args[0]).Load()

			if err != nil {
				return err
			}

			bindings, err := keymap.Compile(km)

			if err != nil {
				return err
			}

			manager := event.NewEventManager()

			triggered := make(chan event.Event)

			for _, action := range bindings.Actions() {
				manager.RegisterListener(event.EventType(action), triggered)
			}

			manager.SetBindings(bindings)

			out := cmd.OutOrStdout()

			for _, arg := range args[1:] {
				k, err := combo.Parse(arg)

				if err != nil {
					return err
				}

				if !manager.Dispatch(k.Event()) {
					fmt.Fprintf(out, "%s: unbound\n", k)
					continue
				}

				actions := []string{}

				for range bindings.Lookup(k) {
					select {
					case evt := <-triggered:
						actions = append(actions, string(evt.Type))
					case <-time.After(time.Second):
						return fmt.Errorf("timed out waiting for %s", k)
					}
				}

				// listeners are notified concurrently
				sort.Strings(actions)

				fmt.Fprintf(out, "%s: %s\n", k, strings.Join(actions, ", "))
			}

			return nil
		},
	}

	return cmd
}
