package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

const banner = `
***************************************************
**               Region Wizard                   **
***************************************************`

type menuEntry struct {
	key    string
	label  string
	action func(context.Context) error
}

func (a *app) menu() []menuEntry {
	return []menuEntry{
		{"1", "Add Region", a.addRegion},
		{"2", "Add Host", a.addHost},
		{"3", "Show Regions", a.showRegions},
		{"4", "Show Hosts", a.showHosts},
		{"5", "Attach Hosts", a.attachHosts},
	}
}

// runMenu loops until the user quits or the input ends. Failed actions are
// reported and the menu is shown again.
func (a *app) runMenu(ctx context.Context) error {
	entries := a.menu()
	keys := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		keys = append(keys, e.key)
	}
	keys = append(keys, "q")

	for {
		fmt.Fprintln(a.out, banner)
		for _, e := range entries {
			fmt.Fprintf(a.out, "%s. %s\n", e.key, e.label)
		}
		fmt.Fprintln(a.out, "q. Quit")

		choice, err := a.prompter.Ask("\nEnter Selection", keys, "")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "q" {
			return nil
		}

		for _, e := range entries {
			if e.key != choice {
				continue
			}
			if err := e.action(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				zap.S().Named("cli").Errorw("menu action failed", "action", e.label, "error", err)
				color.New(color.FgRed).Fprintf(a.out, "ERROR: %v\n", err)
			}
		}
	}
}
